package models

import (
	"time"
)

type User struct {
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Word is one vocabulary pair owned by a user. Source is the English side,
// Target the Uzbek one.
type Word struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Source    string    `db:"source_text"`
	Target    string    `db:"target_text"`
	CreatedAt time.Time `db:"created_at"`
}
