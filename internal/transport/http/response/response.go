package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner-api/internal/domain"
)

func OK(c *gin.Context, data any) { c.JSON(http.StatusOK, data) }

func Created(c *gin.Context, data any) { c.JSON(http.StatusCreated, data) }

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Err is the single point mapping failures to HTTP. Typed errors keep
// their status and machine code; anything else is a 500 INTERNAL.
func Err(c *gin.Context, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		c.AbortWithStatusJSON(de.Status, errBody(de))
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, errBody(domain.ErrInternal(err)))
}

func errBody(e *domain.Error) gin.H {
	body := gin.H{"code": e.Code, "message": e.Message}
	if len(e.Fields) > 0 {
		body["fields"] = e.Fields
	}
	return body
}
