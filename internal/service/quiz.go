package service

import (
	"context"
	crypto "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"slices"

	"github.com/DanRulev/vocabquiz/internal/models"
	"go.uber.org/zap"
)

const (
	MinQuizWords = 5
	quizOptions  = 4
)

var ErrNotEnoughWords = errors.New("not enough words for a quiz")

type WordLister interface {
	Words(ctx context.Context, userID int64) ([]models.Word, error)
}

type QuizS struct {
	words WordLister
	log   *zap.Logger
	rnd   func(max int64) (int, error)
}

func NewQuizService(words WordLister, log *zap.Logger) *QuizS {
	return &QuizS{
		words: words,
		log:   log,
		rnd:   randomPosition,
	}
}

// NextQuestion asks for the translation of a random word of the user. The
// other options are translations of the user's other words, each text at most
// once, and the correct one sits at a random position.
func (q *QuizS) NextQuestion(ctx context.Context, userID int64) (models.QuizQuestion, error) {
	words, err := q.words.Words(ctx, userID)
	if err != nil {
		q.log.Warn("failed to load quiz words", zap.Int64("user_id", userID), zap.Error(err))
		return models.QuizQuestion{}, err
	}

	if len(words) < MinQuizWords {
		return models.QuizQuestion{}, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughWords, len(words), MinQuizWords)
	}

	pool := slices.Clone(words)
	q.shuffle(pool)

	target := pool[0]
	used := map[string]bool{target.Target: true}

	options := make([]models.QuizOption, 0, quizOptions)
	for _, w := range pool[1:] {
		if len(options) == quizOptions-1 {
			break
		}
		if used[w.Target] {
			continue
		}
		used[w.Target] = true
		options = append(options, models.QuizOption{ID: w.ID, Text: w.Target})
	}

	correct := models.QuizOption{ID: target.ID, Text: target.Target}
	options = slices.Insert(options, q.position(len(options)+1), correct)

	return models.QuizQuestion{
		WordID:       target.ID,
		QuestionText: target.Source,
		Options:      options,
		CorrectID:    target.ID,
	}, nil
}

func (q *QuizS) shuffle(words []models.Word) {
	for i := len(words) - 1; i > 0; i-- {
		j := q.position(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}

func (q *QuizS) position(n int) int {
	p, err := q.rnd(int64(n))
	if err != nil {
		q.log.Warn("crypto/rand failed, using math/rand fallback", zap.Error(err))
		p = rand.Intn(n)
	}
	return p
}

func randomPosition(max int64) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be greater than 0")
	}

	n, err := crypto.Int(crypto.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}

	return int(n.Int64()), nil
}
