// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidToolsDirPath is returned when a ToolsDirPath value is whitespace-only.
	ErrInvalidToolsDirPath = errors.New("invalid tools dir path")
	// ErrInvalidServerName is returned when a ServerName value is whitespace-only.
	ErrInvalidServerName = errors.New("invalid server name")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidServeConfig is the sentinel error wrapped by InvalidServeConfigError.
	ErrInvalidServeConfig = errors.New("invalid serve config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// ToolsDirPath represents a filesystem path to the tool descriptor directory.
	// The zero value ("") is valid and means "use the built-in default location".
	// Non-zero values must not be whitespace-only.
	ToolsDirPath string

	// InvalidToolsDirPathError is returned when a ToolsDirPath value is
	// non-empty but whitespace-only.
	InvalidToolsDirPathError struct {
		Value ToolsDirPath
	}

	// ServerName represents the identity announced to connecting clients.
	// The zero value ("") is valid and means "use the application name".
	// Non-zero values must not be whitespace-only.
	ServerName string

	// InvalidServerNameError is returned when a ServerName value is
	// non-empty but whitespace-only.
	InvalidServerNameError struct {
		Value ServerName
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidServeConfigError is returned when a ServeConfig has invalid fields.
	// It wraps ErrInvalidServeConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidServeConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// ToolsDir overrides the global tool descriptor directory.
		// Flag and environment overrides take precedence over this value.
		ToolsDir ToolsDirPath `json:"tools_dir" mapstructure:"tools_dir"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Serve configures the stdio server identity
		Serve ServeConfig `json:"serve" mapstructure:"serve"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// ServeConfig configures the identity announced when serving tools over stdio.
	ServeConfig struct {
		// ServerName overrides the announced server name
		ServerName ServerName `json:"server_name" mapstructure:"server_name"`
		// Version overrides the announced server version
		Version string `json:"version" mapstructure:"version"`
	}
)

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// String returns the string representation of the ToolsDirPath.
func (p ToolsDirPath) String() string { return string(p) }

// IsValid returns whether the ToolsDirPath is valid.
// The zero value ("") is valid (means "use the built-in default location").
// Non-zero values must not be whitespace-only.
func (p ToolsDirPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidToolsDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidToolsDirPathError.
func (e *InvalidToolsDirPathError) Error() string {
	return fmt.Sprintf("invalid tools dir path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidToolsDirPath for errors.Is() compatibility.
func (e *InvalidToolsDirPathError) Unwrap() error { return ErrInvalidToolsDirPath }

// String returns the string representation of the ServerName.
func (n ServerName) String() string { return string(n) }

// IsValid returns whether the ServerName is valid.
// The zero value ("") is valid (means "use the application name").
// Non-zero values must not be whitespace-only.
func (n ServerName) IsValid() (bool, []error) {
	if n == "" {
		return true, nil
	}
	if strings.TrimSpace(string(n)) == "" {
		return false, []error{&InvalidServerNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidServerNameError.
func (e *InvalidServerNameError) Error() string {
	return fmt.Sprintf("invalid server name %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidServerName for errors.Is() compatibility.
func (e *InvalidServerNameError) Unwrap() error { return ErrInvalidServerName }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the ServeConfig has valid fields.
// It delegates to ServerName.IsValid(); Version is free-form.
func (c ServeConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ServerName.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidServeConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidServeConfigError.
func (e *InvalidServeConfigError) Error() string {
	return fmt.Sprintf("invalid serve config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidServeConfig for errors.Is() compatibility.
func (e *InvalidServeConfigError) Unwrap() error { return ErrInvalidServeConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to ToolsDir.IsValid(), UI.IsValid(), and Serve.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ToolsDir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Serve.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ToolsDir: "",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Serve: ServeConfig{
			ServerName: "",
			Version:    "",
		},
	}
}
