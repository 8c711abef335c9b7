package db

import "database/sql"

// Word is a vocabulary entry.
type Word struct {
	ID   int64
	Word string
}

// Kanji is a kanji reference entry. Meaning and RTK are optional.
type Kanji struct {
	ID      int64
	Kanji   sql.NullString
	Meaning sql.NullString
	// RTK is the index code from Remembering the Kanji.
	RTK sql.NullString
}
