package file

import (
	"bufio"
	"github.com/gostonefire/stringset/crt"
	"io"
	"os"
	"path/filepath"
)

// OpenDictionary - Opens the dictionary file for reading.
//   - fileName is the path to a file with whitespace delimited words
//
// It returns:
//   - file is the opened file, it is the callers responsibility to close it
//   - err is of type crt.DictionaryUnavailable holding the absolute path of the file if it could not be opened
func OpenDictionary(fileName string) (file *os.File, err error) {
	file, err = os.Open(fileName)
	if err != nil {
		path, absErr := filepath.Abs(fileName)
		if absErr != nil {
			path = fileName
		}
		err = crt.DictionaryUnavailable{Path: path, Err: err}
		return
	}

	return
}

// NewWordScanner - Returns a scanner splitting r into whitespace delimited words
func NewWordScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return scanner
}
