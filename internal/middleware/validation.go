package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/models/dto"
)

// ContextValidatedBody holds the request body bound by ValidateRequest
const ContextValidatedBody = "validatedBody"

// ValidateRequest binds the JSON body into a fresh value built by newBody
// and stores it in the context. Binding runs the validator tags.
func ValidateRequest[T any](newBody func() *T) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := newBody()
		if err := c.ShouldBindJSON(body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
		c.Set(ContextValidatedBody, body)
		c.Next()
	}
}

// ValidatedBody returns the body stored by ValidateRequest
func ValidatedBody[T any](c *gin.Context) (*T, bool) {
	v, ok := c.Get(ContextValidatedBody)
	if !ok {
		return nil, false
	}
	body, ok := v.(*T)
	return body, ok
}

// BindingError writes the standard response for a failed bind
func BindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
