// Package validation provides input validation for utilkit configuration
// and command arguments.
//
// Struct tag validation uses go-playground/validator; field names in
// messages come from the mapstructure (or json) tag so they match the keys
// users write in config files.
//
//	type Options struct {
//	    Name string `mapstructure:"name" validate:"required"`
//	}
//	err := validation.Validate(opts)
//
// Programmatic validation collects field errors:
//
//	v := validation.New().Required("text", text)
//	if err := v.Validate(); err != nil { ... }
package validation
