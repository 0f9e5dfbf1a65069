//go:build unit

package main

import (
	"bytes"
	"context"
	"errors"
	"github.com/gostonefire/stringset/crt"
	"github.com/gostonefire/stringset/internal/config"
	"github.com/stretchr/testify/assert"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig(t *testing.T, dictionary string) config.Config {
	dictionaryPath := filepath.Join(t.TempDir(), "dictionary")
	err := os.WriteFile(dictionaryPath, []byte(dictionary), 0644)
	assert.NoError(t, err, "writes dictionary")

	return config.Config{
		DictionaryPath: dictionaryPath,
		HashAlgorithm:  "polynomial",
		LogLevel:       "ERROR",
	}
}

func TestRun(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("loads dictionary and answers queries", func(t *testing.T) {
		// Prepare
		cfg := testConfig(t, "cat\nbat\nhat\n")
		var out bytes.Buffer

		// Execute
		err := run(context.Background(), cfg, log, strings.NewReader("cag cat"), &out)

		// Check
		assert.NoError(t, err, "runs spellcheck")
		expected := "Dictionary loaded...\n" +
			"Suggesting alternatives ...\ncat\n" +
			"cat is correct.\n"
		assert.Equal(t, expected, out.String(), "program output")
	})

	t.Run("answers queries with crc32 hash algorithm", func(t *testing.T) {
		// Prepare
		cfg := testConfig(t, "cat bat hat")
		cfg.HashAlgorithm = "crc32"
		var out bytes.Buffer

		// Execute
		err := run(context.Background(), cfg, log, strings.NewReader("xat"), &out)

		// Check
		assert.NoError(t, err, "runs spellcheck")
		assert.Equal(t, "Dictionary loaded...\nSuggesting alternatives ...\nbat\ncat\nhat\n", out.String(), "program output")
	})

	t.Run("dumps dictionary when asked", func(t *testing.T) {
		// Prepare
		cfg := testConfig(t, "a bat cat")
		cfg.Dump = true
		cfg.Stat = true
		var out bytes.Buffer

		// Execute
		err := run(context.Background(), cfg, log, strings.NewReader(""), &out)

		// Check
		assert.NoError(t, err, "runs spellcheck")
		assert.Equal(t, "Dictionary loaded...\ncat\nbat\na\n", out.String(), "dictionary dumped")
	})

	t.Run("error without reading queries when dictionary is missing", func(t *testing.T) {
		// Prepare
		cfg := testConfig(t, "")
		cfg.DictionaryPath = filepath.Join(t.TempDir(), "missing")
		var out bytes.Buffer

		// Execute
		err := run(context.Background(), cfg, log, strings.NewReader("cat"), &out)

		// Check
		var du crt.DictionaryUnavailable
		assert.True(t, errors.As(err, &du), "dictionary unavailable")
		assert.Empty(t, out.String(), "nothing written")
	})
}

func TestMustMakeLogger(t *testing.T) {
	t.Run("logs to rotated file", func(t *testing.T) {
		// Prepare
		logPath := filepath.Join(t.TempDir(), "spellcheck.log")

		// Execute
		log, closeLog := mustMakeLogger("INFO", config.LogFile{Path: logPath, MaxSizeMB: 1})
		log.Info("hello")
		closeLog()

		// Check
		data, err := os.ReadFile(logPath)
		assert.NoError(t, err, "log file written")
		assert.Contains(t, string(data), "msg=hello", "message logged")
	})

	t.Run("panics on unknown level", func(t *testing.T) {
		// Execute and Check
		assert.Panics(t, func() { mustMakeLogger("TRACE", config.LogFile{}) })
	})
}
