package api

import (
	"errors"
	"net/http"

	"github.com/DanRulev/vocabquiz/internal/repository"
	"github.com/DanRulev/vocabquiz/internal/service"
	"github.com/gin-gonic/gin"
)

const errInternal = "internal server error"

type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// writeError maps service errors to statuses. Unknown errors never leak their text.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, repository.ErrWordNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: repository.ErrWordNotFound.Error()})
	case errors.Is(err, service.ErrNotEnoughWords):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: errInternal})
	}
}
