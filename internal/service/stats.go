package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/DanRulev/vocabquiz/internal/models"
	"go.uber.org/zap"
)

type StatsRI interface {
	StatsReport(ctx context.Context, userID int64) (models.StatsReport, error)
	AnswerReport(ctx context.Context, userID int64, correct bool) (models.StatsReport, error)
}

type StatsS struct {
	repo StatsRI
	log  *zap.Logger
}

func NewStatsService(repo StatsRI, log *zap.Logger) *StatsS {
	return &StatsS{
		repo: repo,
		log:  log,
	}
}

// GetStats returns the counters together with the word count, both read in
// one transaction.
func (s *StatsS) GetStats(ctx context.Context, userID int64) (models.StatsReport, error) {
	report, err := s.repo.StatsReport(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get stats", zap.Int64("user_id", userID), zap.Error(err))
		return models.StatsReport{}, err
	}

	return report, nil
}

func (s *StatsS) SubmitAnswer(ctx context.Context, userID int64, isCorrect bool) (models.StatsReport, error) {
	report, err := s.repo.AnswerReport(ctx, userID, isCorrect)
	if err != nil {
		s.log.Warn("failed to apply answer", zap.Int64("user_id", userID), zap.Bool("correct", isCorrect), zap.Error(err))
		return models.StatsReport{}, err
	}

	return report, nil
}

// StatsMessage is GetStats rendered for a chat reply.
func (s *StatsS) StatsMessage(ctx context.Context, userID int64) (string, error) {
	report, err := s.GetStats(ctx, userID)
	if err != nil {
		return "", err
	}

	return statsFormat(report), nil
}

func statsFormat(r models.StatsReport) string {
	var sb strings.Builder

	sb.WriteString("📊 *Statistika*\n\n")

	sb.WriteString("✅ To'g'ri javoblar: *")
	sb.WriteString(strconv.Itoa(r.Correct))
	sb.WriteString("*\n")

	sb.WriteString("❌ Xato javoblar: *")
	sb.WriteString(strconv.Itoa(r.Wrong))
	sb.WriteString("*\n")

	sb.WriteString("🔥 Joriy seriya: *")
	sb.WriteString(strconv.Itoa(r.Streak))
	sb.WriteString("*\n")

	sb.WriteString("🏆 Eng yaxshi seriya: *")
	sb.WriteString(strconv.Itoa(r.BestStreak))
	sb.WriteString("*\n")

	sb.WriteString("📚 So'zlar soni: *")
	sb.WriteString(strconv.Itoa(r.TotalWords))
	sb.WriteString("*")

	return sb.String()
}
