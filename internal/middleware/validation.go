package middleware

import (
	"net/http"

	"calendar-assistant/internal/schemas"
	"calendar-assistant/internal/utils"

	"github.com/gin-gonic/gin"
)

// ValidateAndSanitizeStruct binds the request body into a fresh struct from
// newPayload, validates it and stores it in the request context.
func ValidateAndSanitizeStruct(newPayload func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newPayload()
		if err := c.ShouldBindJSON(obj); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, &schemas.ErrorDTO{Error: *schemas.BadRequest})
			return
		}

		validator := utils.GetValidator()
		if err := validator.Validate.Struct(obj); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, &schemas.ErrorDTO{Error: *schemas.BadRequest})
			return
		}

		// Set the validated object in the context
		c.Set(utils.SanitizedPayloadKey.String(), obj)
		c.Next()
	}
}
