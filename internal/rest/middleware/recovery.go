package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/lumelec/backoffice/internal/errors"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/types"
)

// RecoveryMiddleware turns a panic into a 500. It must sit outside the
// Sentry middleware, which reports the panic and re-raises it.
func RecoveryMiddleware(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Errorw("panic recovered",
			"panic", fmt.Sprint(recovered),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", types.GetRequestID(c.Request.Context()),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ierr.ErrorResponse{
			Success: false,
			Error:   ierr.ErrorDetail{Display: unexpectedErrorMessage},
		})
	})
}
