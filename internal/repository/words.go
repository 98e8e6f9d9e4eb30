package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/vocabquiz/internal/models"
)

type WordsR struct {
	db DBI
}

func NewWordsRepository(db DBI) *WordsR {
	return &WordsR{db: db}
}

// AddWord registers the owner if it is unknown and stores the word in the same
// transaction. An existing user row is left untouched.
func (w *WordsR) AddWord(ctx context.Context, word models.Word) (int64, error) {
	if word.CreatedAt.IsZero() {
		word.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := w.db.InTx(ctx, func(tx QueryI) error {
		if err := ensureUser(ctx, tx, models.User{UserID: word.UserID, CreatedAt: word.CreatedAt}); err != nil {
			return err
		}

		query := tx.Rebind(`
			INSERT INTO words (user_id, source_text, target_text, created_at)
			VALUES (?, ?, ?, ?)
			RETURNING id
		`)
		if err := tx.GetContext(ctx, &id, query, word.UserID, word.Source, word.Target, word.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert word for user %d: %w", word.UserID, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func ensureUser(ctx context.Context, q QueryI, user models.User) error {
	query := q.Rebind(`
		INSERT INTO users (user_id, created_at)
		VALUES (?, ?)
		ON CONFLICT (user_id) DO NOTHING
	`)
	if _, err := q.ExecContext(ctx, query, user.UserID, user.CreatedAt); err != nil {
		return fmt.Errorf("failed to ensure user %d: %w", user.UserID, err)
	}
	return nil
}

// Words returns every word of the user, newest first.
func (w *WordsR) Words(ctx context.Context, userID int64) ([]models.Word, error) {
	query := w.db.Rebind(`
		SELECT id, user_id, source_text, target_text, created_at
		FROM words
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`)

	words := make([]models.Word, 0)
	if err := w.db.SelectContext(ctx, &words, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list words for user %d: %w", userID, err)
	}

	return words, nil
}

func (w *WordsR) DeleteWord(ctx context.Context, wordID, userID int64) error {
	query := w.db.Rebind(`DELETE FROM words WHERE id = ? AND user_id = ?`)

	res, err := w.db.ExecContext(ctx, query, wordID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete word %d: %w", wordID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete word %d: %w", wordID, err)
	}
	if n == 0 {
		return ErrWordNotFound
	}

	return nil
}

func (w *WordsR) CountWords(ctx context.Context, userID int64) (int, error) {
	return countWords(ctx, w.db, userID)
}

func countWords(ctx context.Context, q QueryI, userID int64) (int, error) {
	query := q.Rebind(`SELECT COUNT(*) FROM words WHERE user_id = ?`)

	var total int
	if err := q.GetContext(ctx, &total, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count words for user %d: %w", userID, err)
	}

	return total, nil
}
