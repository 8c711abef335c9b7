// Package loader populates the vocabulary store from the word list and kanji
// meanings sources.
package loader

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/japaniel/jpwords/pkg/db"
	"github.com/japaniel/jpwords/pkg/source"
)

// Config holds the fixed locations used by a run.
type Config struct {
	DBPath       string
	WordListPath string
	KanjiPath    string
	// Driver selects the SQLite driver, see db.Open.
	Driver string
}

// DefaultConfig returns the locations relative to the working directory.
func DefaultConfig() Config {
	return Config{
		DBPath:       "japanese_words.db",
		WordListPath: "word_list.json",
		KanjiPath:    "kanji_meanings.json",
		Driver:       db.DefaultDriver,
	}
}

// Loader creates the store and runs the words and kanji passes.
type Loader struct {
	Config Config
	// Out receives the run report. nil means os.Stdout.
	Out io.Writer
	// Logger receives per-pass detail (inserted vs duplicate rows). nil means no logging.
	Logger *log.Logger
}

// New returns a Loader for cfg reporting to stdout.
func New(cfg Config) *Loader {
	return &Loader{Config: cfg, Out: os.Stdout}
}

// passStats counts one pass. processed is what gets reported.
type passStats struct {
	processed int
	inserted  int
}

func (s passStats) skipped() int { return s.processed - s.inserted }

// Run opens the store, ensures the schema, loads both sources in a single
// transaction and commits. A missing or malformed source only aborts its own
// pass. The returned error is reserved for store failures.
func (l *Loader) Run(ctx context.Context) error {
	conn, err := db.Open(l.Config.Driver, l.Config.DBPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.InitDB(conn); err != nil {
		return err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	if err := l.wordsPass(ctx, tx); err != nil {
		return err
	}
	if err := l.kanjiPass(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if err := conn.Close(); err != nil {
		return fmt.Errorf("close %s: %w", l.Config.DBPath, err)
	}

	l.printf("Database '%s' created and populated successfully.\n", l.Config.DBPath)
	return nil
}

func (l *Loader) wordsPass(ctx context.Context, tx *sql.Tx) error {
	path := l.Config.WordListPath
	words, err := source.LoadWordList(path)
	if err != nil {
		l.reportSourceErr(path, err)
		return nil
	}

	stats, err := insertWords(ctx, tx, words)
	if err != nil {
		return err
	}
	l.printf("Successfully inserted %d words.\n", stats.processed)
	l.logf("words: %d new, %d already present or empty", stats.inserted, stats.skipped())
	return nil
}

func (l *Loader) kanjiPass(ctx context.Context, tx *sql.Tx) error {
	path := l.Config.KanjiPath
	entries, err := source.LoadKanjiMeanings(path)
	if err != nil {
		l.reportSourceErr(path, err)
		return nil
	}

	stats, err := insertKanji(ctx, tx, entries)
	if err != nil {
		return err
	}
	l.printf("Successfully inserted %d kanji meanings.\n", stats.processed)
	l.logf("kanji: %d new, %d already present or missing kanji", stats.inserted, stats.skipped())
	return nil
}

func insertWords(ctx context.Context, exec db.DBExecutor, words []source.Text) (passStats, error) {
	var stats passStats
	for _, w := range words {
		ok, err := db.InsertWord(ctx, exec, w.NullString)
		if err != nil {
			return stats, err
		}
		stats.processed++
		if ok {
			stats.inserted++
		}
	}
	return stats, nil
}

func insertKanji(ctx context.Context, exec db.DBExecutor, entries []source.KanjiEntry) (passStats, error) {
	var stats passStats
	for _, e := range entries {
		ok, err := db.InsertKanji(ctx, exec, db.Kanji{
			Kanji:   e.Kanji.NullString,
			Meaning: e.Meaning.NullString,
			RTK:     e.RTK.NullString,
		})
		if err != nil {
			return stats, err
		}
		stats.processed++
		if ok {
			stats.inserted++
		}
	}
	return stats, nil
}

func (l *Loader) reportSourceErr(path string, err error) {
	switch {
	case errors.Is(err, source.ErrNotFound):
		l.printf("Error: %s not found.\n", path)
	case errors.Is(err, source.ErrMalformed):
		l.printf("Error: Could not decode %s.\n", path)
	default:
		l.printf("Error: Could not read %s: %v\n", path, err)
	}
	l.logf("skipping %s: %v", path, err)
}

func (l *Loader) printf(format string, args ...interface{}) {
	out := l.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, args...)
}

func (l *Loader) logf(format string, args ...interface{}) {
	if l.Logger != nil {
		l.Logger.Printf(format, args...)
	}
}
