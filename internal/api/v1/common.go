package v1

import (
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	ierr "github.com/lumelec/backoffice/internal/errors"
)

// parseID reads the numeric :id path parameter
func parseID(c *gin.Context, entity string) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, ierr.NewErrorf("invalid %s id %q", entity, raw).
			WithHintf("Invalid %s ID.", entity).
			WithReportableDetails(map[string]any{"id": raw}).
			Mark(ierr.ErrValidation)
	}
	return id, nil
}

// bindJSON decodes the request body and reports malformed bodies as 400.
// A value of the wrong JSON type for its field is reported per field.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		c.Error(ierr.WithError(err).
			WithHint("Invalid field types.").
			WithReportableDetails(map[string]any{field: "unexpected " + typeErr.Value}).
			Mark(ierr.ErrValidation))
		return false
	}

	c.Error(ierr.WithError(err).
		WithHint("Invalid request format").
		Mark(ierr.ErrValidation))
	return false
}
