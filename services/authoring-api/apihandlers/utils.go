package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
)

// statusCodeForError maps the domain error taxonomy onto HTTP status codes.
func statusCodeForError(err error) int {
	var validationErr *questionTypes.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, questionTypes.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, questionTypes.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error, fallbackMsg string) {
	status := statusCodeForError(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": fallbackMsg})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
