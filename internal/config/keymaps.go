package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Error producers
	ProduceError    string `yaml:"produce_error"`
	InjectMalformed string `yaml:"inject_malformed"`
	ClearError      string `yaml:"clear_error"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		ProduceError:    "e",
		InjectMalformed: "m",
		ClearError:      "c",
		Quit:            "q",
	}
}

// applyDefaults fills in any missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.ProduceError == "" {
		k.ProduceError = defaults.ProduceError
	}
	if k.InjectMalformed == "" {
		k.InjectMalformed = defaults.InjectMalformed
	}
	if k.ClearError == "" {
		k.ClearError = defaults.ClearError
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
