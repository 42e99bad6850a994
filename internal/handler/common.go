// Package handler maps HTTP requests onto storage operations. Every handler
// follows the same shape: bind and validate the body (400 with a field-error
// list), call storage (unknown id maps to 404), and wrap the result in the
// uniform envelope. Storage failures log the detail and return a generic 500.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/util"
)

// bindJSON binds the request body and reports every violated field on
// failure. Returns false when the request has already been answered.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		util.ValidationError(c, util.FlattenValidationErrors(err))
		return false
	}
	return true
}
