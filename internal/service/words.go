package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/vocabquiz/internal/models"
	"go.uber.org/zap"
)

type WordRI interface {
	AddWord(ctx context.Context, word models.Word) (int64, error)
	Words(ctx context.Context, userID int64) ([]models.Word, error)
	DeleteWord(ctx context.Context, wordID, userID int64) error
}

type WordS struct {
	repo WordRI
	log  *zap.Logger
}

func NewWordService(repo WordRI, log *zap.Logger) *WordS {
	return &WordS{
		repo: repo,
		log:  log,
	}
}

// AddWord stores a pair for the user, creating the user on first use. Texts
// are stored as given, empty strings included.
func (w *WordS) AddWord(ctx context.Context, userID int64, source, target string) (int64, error) {
	id, err := w.repo.AddWord(ctx, models.Word{
		UserID: userID,
		Source: source,
		Target: target,
	})
	if err != nil {
		w.log.Warn("failed to add word", zap.Int64("user_id", userID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (w *WordS) ListWords(ctx context.Context, userID int64) ([]models.Word, error) {
	return w.repo.Words(ctx, userID)
}

// SearchWords keeps the words whose source or target contains query, ignoring
// case. An empty query returns the full list.
func (w *WordS) SearchWords(ctx context.Context, userID int64, query string) ([]models.Word, error) {
	words, err := w.repo.Words(ctx, userID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return words, nil
	}

	found := make([]models.Word, 0, len(words))
	for _, word := range words {
		if strings.Contains(strings.ToLower(word.Source), query) ||
			strings.Contains(strings.ToLower(word.Target), query) {
			found = append(found, word)
		}
	}

	return found, nil
}

func (w *WordS) DeleteWord(ctx context.Context, wordID, userID int64) error {
	if err := w.repo.DeleteWord(ctx, wordID, userID); err != nil {
		return fmt.Errorf("delete word %d of user %d: %w", wordID, userID, err)
	}

	return nil
}
