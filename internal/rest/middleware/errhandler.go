package middleware

import (
	"strings"

	"github.com/cockroachdb/errors"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed onto the gin context as a flat
// {"error": <message>} body with the status mapped from the sentinel the
// error was marked with.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status := ierr.HTTPStatusFromErr(err)
			c.JSON(status, ierr.ErrorResponse{Error: getDisplayMessage(err)})
		}
	}
}

func getDisplayMessage(err error) string {
	// GetAllHints is post-order traversal; the first non-empty hint is the
	// caller-facing message.
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		for _, hint := range hints {
			if hint = strings.TrimSpace(hint); hint != "" {
				return hint
			}
		}
	}
	return "An unexpected error occurred"
}
