package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/vocabquiz/internal/models"
)

type StatsR struct {
	db DBI
}

func NewStatsRepository(db DBI) *StatsR {
	return &StatsR{db: db}
}

// Stats returns the stored counters, or zero counters when the user has never
// answered.
func (s *StatsR) Stats(ctx context.Context, userID int64) (models.Stats, error) {
	return getStats(ctx, s.db, userID)
}

// ApplyAnswer records one answer in a single statement. A missing row is
// inserted with the counters of a first answer; an existing row is updated in
// place with the same rules, so concurrent answers never overwrite each other.
func (s *StatsR) ApplyAnswer(ctx context.Context, userID int64, correct bool) (models.Stats, error) {
	return applyAnswer(ctx, s.db, userID, correct)
}

// StatsReport reads the counters and the word count in one transaction.
func (s *StatsR) StatsReport(ctx context.Context, userID int64) (models.StatsReport, error) {
	var report models.StatsReport
	err := s.db.InTx(ctx, func(tx QueryI) error {
		stats, err := getStats(ctx, tx, userID)
		if err != nil {
			return err
		}

		total, err := countWords(ctx, tx, userID)
		if err != nil {
			return err
		}

		report = models.NewStatsReport(stats, total)
		return nil
	})
	if err != nil {
		return models.StatsReport{}, err
	}

	return report, nil
}

// AnswerReport applies one answer and counts the user's words in the same
// transaction.
func (s *StatsR) AnswerReport(ctx context.Context, userID int64, correct bool) (models.StatsReport, error) {
	var report models.StatsReport
	err := s.db.InTx(ctx, func(tx QueryI) error {
		stats, err := applyAnswer(ctx, tx, userID, correct)
		if err != nil {
			return err
		}

		total, err := countWords(ctx, tx, userID)
		if err != nil {
			return err
		}

		report = models.NewStatsReport(stats, total)
		return nil
	})
	if err != nil {
		return models.StatsReport{}, err
	}

	return report, nil
}

func getStats(ctx context.Context, q QueryI, userID int64) (models.Stats, error) {
	query := q.Rebind(`
		SELECT user_id, correct_count, wrong_count, streak, best_streak
		FROM stats
		WHERE user_id = ?
	`)

	var stats models.Stats
	err := q.GetContext(ctx, &stats, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Stats{UserID: userID}, nil
		}
		return models.Stats{}, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}

	return stats, nil
}

func applyAnswer(ctx context.Context, q QueryI, userID int64, correct bool) (models.Stats, error) {
	first := models.Stats{UserID: userID}.Apply(correct)

	query := q.Rebind(`
		INSERT INTO stats (user_id, correct_count, wrong_count, streak, best_streak)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			correct_count = stats.correct_count + excluded.correct_count,
			wrong_count   = stats.wrong_count + excluded.wrong_count,
			streak        = CASE WHEN excluded.correct_count > 0 THEN stats.streak + 1 ELSE 0 END,
			best_streak   = CASE
				WHEN excluded.correct_count > 0 AND stats.streak + 1 > stats.best_streak THEN stats.streak + 1
				ELSE stats.best_streak
			END
		RETURNING user_id, correct_count, wrong_count, streak, best_streak
	`)

	var stats models.Stats
	err := q.GetContext(ctx, &stats, query, first.UserID, first.Correct, first.Wrong, first.Streak, first.BestStreak)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to apply answer for user %d: %w", userID, err)
	}

	return stats, nil
}
