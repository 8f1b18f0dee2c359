package rendering

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/jonathan/devfolio/internal/types"
)

// Shade percentages for the derived theme variables.
const (
	primaryDarkPercent  = -15
	primaryLightPercent = 15
	primaryDeepPercent  = -40
	borderPercent       = 20
)

var themeTemplate = template.Must(template.New("theme.css").Parse(`:root {
  --color-primary: {{.Primary}};
  --color-primary-dark: {{.PrimaryDark}};
  --color-primary-light: {{.PrimaryLight}};
  --color-primary-deep: {{.PrimaryDeep}};
  --color-bg-main: {{.BackgroundMain}};
  --color-bg-card: {{.BackgroundCard}};
  --color-border: {{.Border}};
  --color-text-main: {{.TextMain}};
}
`))

// ThemeVars holds the CSS custom property values derived from a theme.
type ThemeVars struct {
	Primary        string
	PrimaryDark    string
	PrimaryLight   string
	PrimaryDeep    string
	BackgroundMain string
	BackgroundCard string
	Border         string
	TextMain       string
}

// ParseHexColor parses #rgb or #rrggbb into channel values.
func ParseHexColor(color string) (r, g, b int, err error) {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 || !strings.HasPrefix(color, "#") {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", color)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", color, err)
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), nil
}

// ShadeColor scales each channel of color by (100+percent)/100, rounding down
// and clamping to 0-255. Negative percent darkens, positive lightens. The
// result is lowercase #rrggbb.
func ShadeColor(color string, percent int) (string, error) {
	r, g, b, err := ParseHexColor(color)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", shade(r, percent), shade(g, percent), shade(b, percent)), nil
}

func shade(c, percent int) int {
	v := c * (100 + percent)
	if v <= 0 {
		return 0
	}
	return min(v/100, 255)
}

// DeriveThemeVars computes the stylesheet variables for theme.
func DeriveThemeVars(theme types.Theme) (ThemeVars, error) {
	colors := []struct{ field, value string }{
		{"primaryColor", theme.PrimaryColor},
		{"backgroundColor", theme.BackgroundColor},
		{"cardColor", theme.CardColor},
		{"textColor", theme.TextColor},
	}
	for _, c := range colors {
		if _, _, _, err := ParseHexColor(c.value); err != nil {
			return ThemeVars{}, &RenderError{Message: fmt.Sprintf("invalid %s", c.field), Cause: err}
		}
	}

	// Inputs are validated above, so the shades cannot fail.
	dark, _ := ShadeColor(theme.PrimaryColor, primaryDarkPercent)
	light, _ := ShadeColor(theme.PrimaryColor, primaryLightPercent)
	deep, _ := ShadeColor(theme.PrimaryColor, primaryDeepPercent)
	border, _ := ShadeColor(theme.CardColor, borderPercent)

	return ThemeVars{
		Primary:        theme.PrimaryColor,
		PrimaryDark:    dark,
		PrimaryLight:   light,
		PrimaryDeep:    deep,
		BackgroundMain: theme.BackgroundColor,
		BackgroundCard: theme.CardColor,
		Border:         border,
		TextMain:       theme.TextColor,
	}, nil
}

// RenderThemeCSS renders the :root stylesheet for theme.
func RenderThemeCSS(theme types.Theme) (string, error) {
	vars, err := DeriveThemeVars(theme)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := themeTemplate.Execute(&sb, vars); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}
