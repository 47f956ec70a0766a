package utils

import (
	"calendar-assistant/internal/schemas"

	"github.com/gin-gonic/gin"
)

// WriteAndLogResponse encodes the response object to JSON and writes it to the HTTP response.
// It also sets the provided status code.
func WriteAndLogResponse(ctx *gin.Context, response interface{}, statusCode int) {
	LogMessageWithFields(ctx, "info", "Returning response")
	ctx.JSON(statusCode, response)
}

// WriteAndLogError logs the provided error and sends an error response with the specified status code and error details.
func WriteAndLogError(ctx *gin.Context, customErr *schemas.CustomError, statusCode int, err error) {
	LogMessageWithFields(ctx, "error", "Error occurred: "+err.Error())
	LogMessageWithFields(ctx, "error", "Returning "+customErr.Code+" / "+customErr.Message)
	errorDto := &schemas.ErrorDTO{
		Error: *customErr,
	}
	ctx.JSON(statusCode, errorDto)
}

// WriteAndLogSpokenError sends an assistant-route error carrying a spoken
// sentence for the voice frontend next to the error tag.
func WriteAndLogSpokenError(ctx *gin.Context, errTag, spoken string, statusCode int) {
	LogMessageWithFields(ctx, "error", "Returning spoken error: "+errTag)
	ctx.JSON(statusCode, &schemas.SpokenErrorDTO{
		Error:          errTag,
		SpokenResponse: spoken,
	})
}
