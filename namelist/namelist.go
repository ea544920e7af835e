/*
Package namelist reads member name lists.

A name list is a text file with one name per line, optionally starting with a
header line "nev" (as exported by the member register). Blank lines are
ignored, surrounding whitespace is trimmed and names are composed to Unicode
NFC, so that "a" followed by a combining acute accent is read as "á".
*/
package namelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'hunsort'
func tracer() tracing.Trace {
	return tracing.Select("hunsort")
}

// Header is the column title of name exports. Any line equal to it,
// ignoring case, is skipped and never taken as a name.
const Header = "nev"

// ErrNoNames is returned when a name list does not contain a single name.
var ErrNoNames = errors.New("no names found")

// Reader streams names from a name list.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next name.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if r.line == 1 {
			line = strings.TrimPrefix(line, "\ufeff") // byte order mark of spreadsheet exports
		}
		if line == "" || strings.EqualFold(line, Header) {
			continue
		}
		return norm.NFC.String(line), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("name list line %d: %w", r.line+1, err)
	}
	return "", io.EOF
}

// Load reads all names from reader, in list order. Duplicates are kept.
func Load(reader io.Reader) ([]string, error) {
	r := NewReader(reader)
	var names []string
	for {
		name, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, ErrNoNames
	}
	tracer().Debugf("read %d names from %d lines", len(names), r.line)
	return names, nil
}

// LoadFile reads all names from the file at path. A missing file is reported
// with an error wrapping fs.ErrNotExist.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("name list: %w", err)
	}
	defer f.Close()
	names, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("name list %s: %w", path, err)
	}
	tracer().Infof("loaded %d names from %s", len(names), path)
	return names, nil
}

// Write writes names as a name list: the Header line, then one name per line.
func Write(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(Header + "\n")
	for _, name := range names {
		bw.WriteString(name + "\n")
	}
	return bw.Flush()
}
