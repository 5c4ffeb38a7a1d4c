package resp

import (
	"errors"
	"net/http"

	"backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": data})
}

// AuthOK is the login/registration shape: token travels next to the data.
func AuthOK(c *gin.Context, code int, token string, data any) {
	c.JSON(code, gin.H{"status": "success", "token": token, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"message": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"message": msg})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong"})
}

// Error maps an apperr kind to its status code. Anything that is not an
// *apperr.Error is treated as internal.
func Error(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ServerError(c)
		return
	}
	switch ae.Kind {
	case apperr.KindValidation, apperr.KindConflict:
		BadRequest(c, ae.Message)
	case apperr.KindUnauthorized:
		Unauthorized(c, ae.Message)
	case apperr.KindForbidden:
		Forbidden(c, ae.Message)
	case apperr.KindNotFound:
		NotFound(c, ae.Message)
	default:
		ServerError(c)
	}
}
