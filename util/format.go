package util

import "strings"

// FormatOptions selects the transformations applied by FormatString.
// The zero value applies none.
type FormatOptions struct {
	Trim      bool `yaml:"trim" mapstructure:"trim"`
	Lowercase bool `yaml:"lowercase" mapstructure:"lowercase"`
}

// FormatString applies the transformations selected in opts to input.
// Trimming removes leading and trailing Unicode whitespace and always runs
// before lowercasing. A nil opts returns input unchanged.
func FormatString(input string, opts *FormatOptions) string {
	o := Deref(opts)
	result := input
	if o.Trim {
		result = strings.TrimSpace(result)
	}
	if o.Lowercase {
		result = strings.ToLower(result)
	}
	return result
}
