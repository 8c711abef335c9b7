// Package source reads the JSON inputs of the word and kanji passes.
package source

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrNotFound reports a missing source file. It also matches fs.ErrNotExist.
	ErrNotFound = errors.New("source not found")
	// ErrMalformed reports a source that is not JSON of the expected shape.
	ErrMalformed = errors.New("source malformed")
)

// Text is a nullable JSON scalar. Strings are kept as-is, null or an absent
// field is NULL. Other scalars take the text SQLite gives the original's
// bound values: integers in decimal (113 becomes "113"), floats the way
// SQLite renders a REAL (1e2 becomes "100.0") and bools as "1" or "0".
type Text struct {
	sql.NullString
}

// NewText returns a valid Text holding s.
func NewText(s string) Text {
	return Text{sql.NullString{String: s, Valid: true}}
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty JSON value")
	}
	switch c := data[0]; {
	case c == 'n':
		t.NullString = sql.NullString{}
		return nil
	case c == 't' || c == 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		if b {
			*t = NewText("1")
		} else {
			*t = NewText("0")
		}
		return nil
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = NewText(s)
		return nil
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		s, err := numberText(n.String())
		if err != nil {
			return err
		}
		*t = NewText(s)
		return nil
	default:
		return fmt.Errorf("expected a string, number, bool or null, got %s", data)
	}
}

// numberText formats a JSON number literal. Literals with a fraction or an
// exponent are floats, rendered like SQLite's %!.15g: fixed notation for
// decimal exponents -4..14, exponent notation otherwise, and the mantissa
// always carries a decimal point. Digits are the shortest round trip.
func numberText(lit string) (string, error) {
	if !strings.ContainsAny(lit, ".eE") {
		i, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return "", fmt.Errorf("invalid integer %s", lit)
		}
		return i.String(), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return "", fmt.Errorf("invalid float %s: %w", lit, err)
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return "", err
	}
	if exp < -4 || exp >= 15 {
		i := strings.IndexByte(sci, 'e')
		if !strings.Contains(sci[:i], ".") {
			sci = sci[:i] + ".0" + sci[i:]
		}
		return sci, nil
	}
	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed, nil
}

// KanjiEntry is one record of the kanji meanings source.
type KanjiEntry struct {
	Kanji   Text `json:"kanji"`
	Meaning Text `json:"meaning"`
	RTK     Text `json:"rtk"`
}

// LoadWordList reads a JSON array of words from path.
func LoadWordList(path string) ([]Text, error) {
	var words []Text
	if err := load(path, &words); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadKanjiMeanings reads a JSON array of kanji records from path.
func LoadKanjiMeanings(path string) ([]KanjiEntry, error) {
	var entries []KanjiEntry
	if err := load(path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// load reads the whole file and closes it before decoding into v.
func load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("%w: %s: expected a JSON array", ErrMalformed, path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
	}
	return nil
}
