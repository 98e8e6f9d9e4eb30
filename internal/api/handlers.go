package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/DanRulev/vocabquiz/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

type userQuery struct {
	UserID *int64 `form:"user_id" binding:"required"`
}

type listQuery struct {
	UserID *int64 `form:"user_id" binding:"required"`
	Query  string `form:"q"`
}

type addWordRequest struct {
	UserID *int64 `json:"user_id" binding:"required"`
	En     string `json:"en"`
	Uz     string `json:"uz"`
}

type answerRequest struct {
	UserID    *int64 `json:"user_id" binding:"required"`
	IsCorrect *bool  `json:"is_correct" binding:"required"`
}

type wordResponse struct {
	ID int64  `json:"id"`
	En string `json:"en"`
	Uz string `json:"uz"`
}

type statusResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id,omitempty"`
}

func (a *API) addWord(c *gin.Context) {
	var req addWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id, err := a.service.AddWord(c.Request.Context(), *req.UserID, req.En, req.Uz)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "ok", ID: id})
}

func (a *API) listWords(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	var (
		words []models.Word
		err   error
	)
	if q.Query == "" {
		words, err = a.service.ListWords(c.Request.Context(), *q.UserID)
	} else {
		words, err = a.service.SearchWords(c.Request.Context(), *q.UserID, q.Query)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]wordResponse, 0, len(words))
	for _, w := range words {
		resp = append(resp, wordResponse{ID: w.ID, En: w.Source, Uz: w.Target})
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) deleteWord(c *gin.Context) {
	wordID, err := strconv.ParseInt(c.Param("word_id"), 10, 64)
	if err != nil {
		badRequest(c, fmt.Errorf("invalid word id %q", c.Param("word_id")))
		return
	}

	var q userQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	if err := a.service.DeleteWord(c.Request.Context(), wordID, *q.UserID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}

func (a *API) getStats(c *gin.Context) {
	var q userQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	report, err := a.service.GetStats(c.Request.Context(), *q.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (a *API) nextQuestion(c *gin.Context) {
	var q userQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	question, err := a.service.NextQuestion(c.Request.Context(), *q.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (a *API) submitAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	report, err := a.service.SubmitAnswer(c.Request.Context(), *req.UserID, *req.IsCorrect)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (a *API) healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := a.health.PingContext(ctx); err != nil {
		a.log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, statusResponse{Status: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}
