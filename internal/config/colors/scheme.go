package colors

import "dario.cat/mergo"

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "high-contrast")
	Preset string `yaml:"preset"`

	// Demo summary text
	Accent string `yaml:"accent"` // title and key hints
	Subtle string `yaml:"subtle"` // labels and status bar
	Normal string `yaml:"normal"` // values

	// Error display component
	ErrorText   string `yaml:"error_text"`
	ErrorBorder string `yaml:"error_border"`

	// Operation error toasts
	ToastFg     string `yaml:"toast_fg"`
	ToastBg     string `yaml:"toast_bg"`
	ToastBorder string `yaml:"toast_border"`

	// Status bar marker shown while an error sits in the store
	Pending string `yaml:"pending"`
}

// GetPreset returns a preset color scheme by name, falling back to Default
func GetPreset(name string) *ColorScheme {
	if name == "high-contrast" {
		return HighContrast()
	}
	return Default()
}

// ApplyDefaults fills every empty color from the scheme's preset, keeping
// the colors that were set explicitly
func (c *ColorScheme) ApplyDefaults() error {
	return mergo.Merge(c, GetPreset(c.Preset))
}
