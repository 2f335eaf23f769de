// api/util/http_util.go
package util

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
)

// RespondWithError logs err and writes {"error": message}. Validation errors
// also carry their list of problems.
func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))

	body := gin.H{"error": message}
	var verr *hazard_errors.ValidationError
	if errors.As(err, &verr) {
		body["problems"] = verr.Problems
	}
	c.JSON(code, body)
}
