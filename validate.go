package hunsort

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrUnrecognized is returned by Validate for names containing characters
// outside the Hungarian alphabet.
var ErrUnrecognized = errors.New("character not in Hungarian alphabet")

// UnrecognizedError reports the first unrecognized token of a name.
type UnrecognizedError struct {
	Name     string
	Token    Token
	Position int // token index within the name
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("name %q: %q at letter %d: %v", e.Name, string(e.Token), e.Position+1, ErrUnrecognized)
}

func (e *UnrecognizedError) Unwrap() error {
	return ErrUnrecognized
}

// isSeparator reports whether a token is allowed inside a name without being
// a letter: spaces between given and family names, hyphens of double names,
// the dot of abbreviations such as "ifj." and apostrophes.
func isSeparator(t Token) bool {
	r := []rune(string(t))
	if len(r) != 1 {
		return false
	}
	return unicode.IsSpace(r[0]) || r[0] == '-' || r[0] == '.' || r[0] == '\''
}

// Validate checks that a name consists of letters of the Hungarian alphabet
// and separators only. It returns an *UnrecognizedError otherwise. Sorting
// never requires validation, unrecognized characters simply rank behind all
// letters.
func Validate(name string) error {
	for i, t := range Tokenize(name) {
		if t.Rank() == Sentinel && !isSeparator(t) {
			return &UnrecognizedError{Name: name, Token: t, Position: i}
		}
	}
	return nil
}
