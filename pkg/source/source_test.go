package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWordList(t *testing.T) {
	path := writeFile(t, "word_list.json", `["水", "火", "dog", 42, null]`)

	words, err := LoadWordList(path)
	require.NoError(t, err)
	require.Len(t, words, 5)

	assert.Equal(t, NewText("水"), words[0])
	assert.Equal(t, NewText("火"), words[1])
	assert.Equal(t, NewText("dog"), words[2])
	assert.Equal(t, NewText("42"), words[3])
	assert.False(t, words[4].Valid)
}

func TestLoadWordListScalarText(t *testing.T) {
	path := writeFile(t, "word_list.json", `["a", 1e2, 1.0, 1.5, -0, 0.0001, 1e-5, 1e14, 1e15, 2.5E+20, true, false, 12345678901234567890]`)

	words, err := LoadWordList(path)
	require.NoError(t, err)

	var got []string
	for _, w := range words {
		require.True(t, w.Valid)
		got = append(got, w.String)
	}
	assert.Equal(t, []string{
		"a", "100.0", "1.0", "1.5", "0", "0.0001", "1.0e-05", "100000000000000.0", "1.0e+15", "2.5e+20", "1", "0",
		"12345678901234567890",
	}, got)
}

func TestLoadWordListFloatOutOfRange(t *testing.T) {
	_, err := LoadWordList(writeFile(t, "word_list.json", `["a", 1e400]`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestLoadWordListEmptyArray(t *testing.T) {
	words, err := LoadWordList(writeFile(t, "word_list.json", `[]`))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadKanjiMeanings(t *testing.T) {
	path := writeFile(t, "kanji_meanings.json", `[
		{"kanji": "水", "meaning": "water", "rtk": "113"},
		{"kanji": "木"},
		{"kanji": "火", "meaning": null, "rtk": 160, "strokes": 4}
	]`)

	entries, err := LoadKanjiMeanings(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, KanjiEntry{Kanji: NewText("水"), Meaning: NewText("water"), RTK: NewText("113")}, entries[0])

	assert.Equal(t, "木", entries[1].Kanji.String)
	assert.False(t, entries[1].Meaning.Valid)
	assert.False(t, entries[1].RTK.Valid)

	assert.False(t, entries[2].Meaning.Valid)
	assert.Equal(t, NewText("160"), entries[2].RTK)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadWordList(filepath.Join(t.TempDir(), "word_list.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, ErrMalformed))

	_, err = LoadKanjiMeanings(filepath.Join(t.TempDir(), "kanji_meanings.json"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"truncated", `["水", "火"`},
		{"not json", `water, fire`},
		{"object instead of array", `{"words": ["水"]}`},
		{"top-level null", `null`},
		{"nested array element", `["水", ["火"]]`},
		{"trailing data", `["水"] ["火"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWordList(writeFile(t, "word_list.json", tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLoadKanjiMalformedRecord(t *testing.T) {
	_, err := LoadKanjiMeanings(writeFile(t, "kanji_meanings.json", `["水"]`))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = LoadKanjiMeanings(writeFile(t, "kanji_meanings.json", `[{"kanji": {"text": "水"}}]`))
	assert.ErrorIs(t, err, ErrMalformed)
}
