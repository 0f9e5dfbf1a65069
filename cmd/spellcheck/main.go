package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gostonefire/stringset"
	"github.com/gostonefire/stringset/crt"
	"github.com/gostonefire/stringset/hashfunc"
	"github.com/gostonefire/stringset/internal/conf"
	"github.com/gostonefire/stringset/internal/config"
	"github.com/gostonefire/stringset/internal/file"
	"github.com/gostonefire/stringset/internal/hash"
	"github.com/gostonefire/stringset/spellcheck"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(2)
	}

	log, closeLog := mustMakeLogger(cfg.LogLevel, cfg.LogFile)
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, log, os.Stdin, os.Stdout); err != nil {
		var du crt.DictionaryUnavailable
		if errors.As(err, &du) {
			fmt.Printf("Cannot open file %s\n", du.Path)
			fmt.Println(du.Err)
		}
		log.Error("spellcheck failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger, queries io.Reader, out io.Writer) error {
	dictionary, err := file.OpenDictionary(cfg.DictionaryPath)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(dictionary)

	set, err := stringset.New(hashAlgorithm(cfg.HashAlgorithm))
	if err != nil {
		return fmt.Errorf("failed to create string set: %w", err)
	}

	checker := spellcheck.NewChecker(log, set)
	if _, err = checker.LoadDictionary(dictionary); err != nil {
		return fmt.Errorf("failed to load dictionary %s: %w", cfg.DictionaryPath, err)
	}
	fmt.Fprintln(out, "Dictionary loaded...")

	if cfg.Stat {
		stat := set.Stat(false)
		log.Info("string set statistics",
			"records", stat.Records,
			"capacity", stat.Capacity,
			"empty_buckets", stat.EmptyBuckets,
			"longest_chain", stat.LongestChain,
			"load_factor", stat.LoadFactor,
			"internal_algorithm", stat.InternalAlgorithm,
		)
	}
	if cfg.Dump {
		if err = set.Print(out); err != nil {
			return fmt.Errorf("failed to dump dictionary: %w", err)
		}
	}

	return checker.Run(ctx, queries, out)
}

// hashAlgorithm - Returns the hash algorithm for the configured name, nil meaning the internal one
func hashAlgorithm(name string) hashfunc.HashAlgorithm {
	if name == "crc32" {
		return hash.NewCrc32HashAlgorithm(conf.InitialCapacity)
	}
	return nil
}

func mustMakeLogger(logLevel string, logFile config.LogFile) (*slog.Logger, func()) {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		panic("unknown log level: " + logLevel)
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	if logFile.Path != "" {
		rotated := &lumberjack.Logger{
			Filename:   logFile.Path,
			MaxSize:    logFile.MaxSizeMB,
			MaxBackups: logFile.MaxBackups,
			MaxAge:     logFile.MaxAgeDays,
		}
		w = rotated
		closeLog = func() { _ = rotated.Close() }
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeLog
}
