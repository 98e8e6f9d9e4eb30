package api

import (
	"context"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/DanRulev/vocabquiz/internal/config"
	"github.com/DanRulev/vocabquiz/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/service_mock.go github.com/DanRulev/vocabquiz/internal/api ServiceI

type ServiceI interface {
	AddWord(ctx context.Context, userID int64, source, target string) (int64, error)
	ListWords(ctx context.Context, userID int64) ([]models.Word, error)
	SearchWords(ctx context.Context, userID int64, query string) ([]models.Word, error)
	DeleteWord(ctx context.Context, wordID, userID int64) error
	GetStats(ctx context.Context, userID int64) (models.StatsReport, error)
	SubmitAnswer(ctx context.Context, userID int64, isCorrect bool) (models.StatsReport, error)
	NextQuestion(ctx context.Context, userID int64) (models.QuizQuestion, error)
}

type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type API struct {
	engine  *gin.Engine
	service ServiceI
	health  HealthChecker
	log     *zap.Logger
}

func NewAPI(cfg config.HTTPConfig, service ServiceI, health HealthChecker, log *zap.Logger) *API {
	a := &API{
		engine:  gin.New(),
		service: service,
		health:  health,
		log:     log.Named("api"),
	}

	a.engine.Use(
		requestID(),
		requestLogger(a.log),
		gin.CustomRecoveryWithWriter(io.Discard, a.recover),
		cors.New(corsConfig(cfg.AllowedOrigins)),
	)

	a.setupRoutes()

	return a
}

func (a *API) setupRoutes() {
	a.engine.GET("/healthz", a.healthz)

	api := a.engine.Group("/api")
	{
		words := api.Group("/words")
		words.POST("", a.addWord)
		words.GET("/list", a.listWords)
		words.DELETE("/:word_id", a.deleteWord)

		api.GET("/stats", a.getStats)

		quiz := api.Group("/quiz")
		quiz.GET("/question", a.nextQuestion)
		quiz.POST("/answer", a.submitAnswer)
	}
}

func (a *API) Handler() http.Handler {
	return a.engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}
