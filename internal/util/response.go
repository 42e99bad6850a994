package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the data payload of a successful reply.
type Response map[string]interface{}

// Business codes carried alongside the HTTP status.
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeNotFound     = 40401
	CodeServerErr    = 50001
	CodeUnavailable  = 50301
)

// Success writes the uniform success envelope.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes the uniform error envelope.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// ValidationError writes a 400 with one item per violated field.
func ValidationError(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    CodeInvalidParam,
		"message": "validation failed",
		"errors":  errs,
	})
}

// NotFound writes the standard 404 envelope.
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, CodeNotFound, msg)
}

// ServerError writes the standard 500 envelope. The message stays generic;
// internal detail goes to the log, not the client.
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeServerErr, "internal error, please retry")
}
