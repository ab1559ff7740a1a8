package theme

import "github.com/thenoetrevino/opserr/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight   string
	Subtle      string
	Normal      string
	ErrorText   string
	ErrorBorder string
	ToastFg     string
	ToastBg     string
	ToastBorder string
	Pending     string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	ErrorText = scheme.ErrorText
	ErrorBorder = scheme.ErrorBorder
	ToastFg = scheme.ToastFg
	ToastBg = scheme.ToastBg
	ToastBorder = scheme.ToastBorder
	Pending = scheme.Pending
}
