package colors

// Default is a dark scheme with red errors and amber toasts
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#D75F5F",
		Subtle: "#6C6C6C",
		Normal: "#DADADA",

		ErrorText:   "#FF5F5F",
		ErrorBorder: "#870000",

		ToastFg:     "#FFD7AF",
		ToastBg:     "#3A1E1E",
		ToastBorder: "#AF5F00",

		Pending: "#FFAF00",
	}
}

// HighContrast uses only black, white and pure red
func HighContrast() *ColorScheme {
	return &ColorScheme{
		Preset: "high-contrast",

		Accent: "#FFFFFF",
		Subtle: "#BCBCBC",
		Normal: "#FFFFFF",

		ErrorText:   "#FF0000",
		ErrorBorder: "#FFFFFF",

		ToastFg:     "#FFFFFF",
		ToastBg:     "#000000",
		ToastBorder: "#FF0000",

		Pending: "#FF0000",
	}
}
