package spellcheck

import (
	"context"
	"fmt"
	"github.com/gostonefire/stringset/internal/conf"
	"github.com/gostonefire/stringset/internal/file"
	"io"
	"log/slog"
)

// Dictionary - The set operations the spell checker needs
type Dictionary interface {
	Insert(key string) error
	Find(key string) bool
}

// Result - Outcome of checking one word
//   - Word is the word that was checked
//   - Correct is true if the word is in the dictionary
//   - Suggestions holds dictionary words differing from Word in exactly one position, empty if Correct
type Result struct {
	Word        string
	Correct     bool
	Suggestions []string
}

// Checker - Checks words against a dictionary and suggests single letter substitutions for misspelled ones
type Checker struct {
	log      *slog.Logger
	dict     Dictionary
	alphabet []rune
}

// NewChecker - Returns a pointer to a new Checker using the conf.Alphabet letters for suggestions
func NewChecker(log *slog.Logger, dict Dictionary) *Checker {
	return &Checker{
		log:      log,
		dict:     dict,
		alphabet: []rune(conf.Alphabet),
	}
}

// LoadDictionary - Inserts every whitespace delimited word read from r, in order and duplicates included.
// It returns the number of words inserted.
func (C *Checker) LoadDictionary(r io.Reader) (loaded int64, err error) {
	scanner := file.NewWordScanner(r)
	for scanner.Scan() {
		if err = C.dict.Insert(scanner.Text()); err != nil {
			err = fmt.Errorf("insert word #%d: %w", loaded+1, err)
			return
		}
		loaded++
	}
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("read dictionary: %w", err)
		return
	}

	C.log.Info("dictionary loaded", "words", loaded)
	return
}

// Check - Looks up word and, if it is not found, collects its suggestions
func (C *Checker) Check(word string) Result {
	if C.dict.Find(word) {
		C.log.Debug("word is correct", "word", word)
		return Result{Word: word, Correct: true}
	}

	suggestions := C.Suggestions(word)
	C.log.Debug("word is misspelled", "word", word, "suggestions", len(suggestions))

	return Result{Word: word, Suggestions: suggestions}
}

// Suggestions - Returns every variant of word with one position replaced by a letter from the alphabet that is
// found in the dictionary. Variants are ordered by position, then by letter.
func (C *Checker) Suggestions(word string) (suggestions []string) {
	runes := []rune(word)
	variant := make([]rune, len(runes))
	for i := range runes {
		copy(variant, runes)
		for _, letter := range C.alphabet {
			variant[i] = letter
			candidate := string(variant)
			if C.dict.Find(candidate) {
				suggestions = append(suggestions, candidate)
			}
		}
	}

	return
}

// Run - Checks every whitespace delimited word read from queries and writes the outcome to out, either
// "<word> is correct." or "Suggesting alternatives ..." followed by one suggestion per line.
// It stops with the context error if ctx is done before all queries are read.
func (C *Checker) Run(ctx context.Context, queries io.Reader, out io.Writer) (err error) {
	var checked int64
	scanner := file.NewWordScanner(queries)
	for scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return
		}

		if err = writeResult(out, C.Check(scanner.Text())); err != nil {
			return
		}
		checked++
	}
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("read queries: %w", err)
		return
	}

	C.log.Info("queries done", "words", checked)
	return
}

// writeResult - Writes one Result in the format described for Run
func writeResult(out io.Writer, result Result) (err error) {
	if result.Correct {
		_, err = fmt.Fprintf(out, "%s is correct.\n", result.Word)
		return
	}

	if _, err = fmt.Fprintln(out, "Suggesting alternatives ..."); err != nil {
		return
	}
	for _, s := range result.Suggestions {
		if _, err = fmt.Fprintln(out, s); err != nil {
			return
		}
	}

	return
}
