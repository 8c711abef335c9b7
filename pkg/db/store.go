package db

import (
	"context"
	"database/sql"
	"fmt"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// InsertWord adds word unless an equal word is already stored.
// A NULL word is rejected by the NOT NULL constraint and likewise ignored.
// inserted reports whether a new row was written.
func InsertWord(ctx context.Context, db DBExecutor, word sql.NullString) (inserted bool, err error) {
	res, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO words (word) VALUES (?)`, word)
	if err != nil {
		return false, fmt.Errorf("insert word %q: %w", word.String, err)
	}
	return affected(res)
}

// InsertKanji adds k unless the kanji is already stored. Meaning and RTK of an
// existing row are never refreshed.
func InsertKanji(ctx context.Context, db DBExecutor, k Kanji) (inserted bool, err error) {
	res, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO kanji (kanji, meaning, rtk) VALUES (?, ?, ?)`,
		k.Kanji, k.Meaning, k.RTK)
	if err != nil {
		return false, fmt.Errorf("insert kanji %q: %w", k.Kanji.String, err)
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
