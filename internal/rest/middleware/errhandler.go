package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	ierr "github.com/lumelec/backoffice/internal/errors"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/sentry"
	"github.com/lumelec/backoffice/internal/types"
)

const (
	unexpectedErrorMessage = "An unexpected error occurred"
	jsonDetailsPrefix      = "__json__:"
)

// ErrorHandler renders the last error pushed with c.Error. Client errors
// come back with their hint; anything else is logged and answered with
// a generic message.
func ErrorHandler(log *logger.Logger, sentrySvc *sentry.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)

		if status >= http.StatusInternalServerError {
			log.Errorw("request failed",
				"error", err,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", types.GetRequestID(c.Request.Context()),
			)
			sentrySvc.CaptureException(err)
			c.JSON(status, ierr.ErrorResponse{
				Success: false,
				Error:   ierr.ErrorDetail{Display: unexpectedErrorMessage},
			})
			return
		}

		c.JSON(status, ierr.ErrorResponse{
			Success: false,
			Error: ierr.ErrorDetail{
				Display: getDisplayMessage(err),
				Details: getSafeDetails(err),
			},
		})
	}
}

func getDisplayMessage(err error) string {
	// GetAllHints is a post-order traversal, the first non-empty hint wins
	for _, hint := range errors.GetAllHints(err) {
		if hint = strings.TrimSpace(hint); hint != "" {
			return hint
		}
	}
	return unexpectedErrorMessage
}

func getSafeDetails(err error) map[string]any {
	details := make(map[string]any)

	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			jsonStr, ok := strings.CutPrefix(payload, jsonDetailsPrefix)
			if !ok {
				continue
			}
			var jsonDetails map[string]any
			if err := json.Unmarshal([]byte(jsonStr), &jsonDetails); err == nil {
				for k, v := range jsonDetails {
					details[k] = v
				}
			}
		}
	}

	return details
}
