package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromBusiness maps a domain error to the matching HTTP status.
func FromBusiness(c *gin.Context, err error, message string) {
	var be BusinessError
	if !AsBusiness(err, &be) {
		Internal(c, "internal_error", message)
		return
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, message)
	case KindConflict:
		Conflict(c, be.Code, message)
	default:
		BadRequest(c, be.Code, message)
	}
}
