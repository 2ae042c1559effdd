package response

import (
	"github.com/gin-gonic/gin"

	"bookshelf/internal/pkg/apperror"
)

// Success writes the uniform {success, data, message} envelope. An empty
// data slice is used when there is no payload, matching the client contract.
func Success(c *gin.Context, statusCode int, data any, message string) {
	if data == nil {
		data = []any{}
	}
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// Fail writes the failure envelope with an explicit status.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// Err is the single boundary translation from a domain error to a
// transport response.
func Err(c *gin.Context, err error) {
	Fail(c, apperror.StatusOf(err), err.Error())
}

// AbortErr writes the failure envelope and stops the middleware chain.
func AbortErr(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperror.StatusOf(err), gin.H{
		"success": false,
		"message": err.Error(),
	})
}
