package types

import (
	ierr "github.com/lumelec/backoffice/internal/errors"
	"github.com/samber/lo"
)

// Theme is the back-office display theme
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

var Themes = []Theme{ThemeLight, ThemeDark, ThemeSystem}

func (t Theme) String() string {
	return string(t)
}

func (t Theme) Validate() error {
	if !lo.Contains(Themes, t) {
		return ierr.NewError("invalid theme").
			WithHint("Theme must be one of light, dark or system").
			WithReportableDetails(map[string]any{
				"allowed": Themes,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
