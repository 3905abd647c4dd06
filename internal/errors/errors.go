// Package errors provides standardized error handling for the Themed application.
// It defines common error types, constants, and helper functions for consistent
// error creation, wrapping, and handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrFileNotFound  = NewFileError("file not found", "", FileNotFound, nil)
	ErrFileAccess    = NewFileError("file access denied", "", FileAccessDenied, nil)
	ErrInvalidPath   = NewFileError("invalid file path", "", InvalidPath, nil)
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrThemeNotFound = NewThemeError("unknown theme", "", ThemeNotFound, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	ConfigNotSet
	// Stylesheet error kinds
	ParseFailed
	// Theme error kinds
	ThemeNotFound
	ThemeInvalid
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// ParseError represents errors raised while parsing stylesheet source.
// Line and column are 1-based positions into the offending source.
type ParseError struct {
	ApplicationError
	source string
	line   int
	col    int
}

// NewParseError creates a new stylesheet parse error
func NewParseError(msg string, source string, line, col int, err error) *ParseError {
	return &ParseError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: ParseFailed,
		},
		source: source,
		line:   line,
		col:    col,
	}
}

// Error returns the parse error message with source position
func (e *ParseError) Error() string {
	if e.source != "" {
		if e.err != nil {
			return fmt.Sprintf("%s:%d:%d: %s: %v", e.source, e.line, e.col, e.msg, e.err)
		}
		return fmt.Sprintf("%s:%d:%d: %s", e.source, e.line, e.col, e.msg)
	}
	if e.line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.line, e.col, e.msg)
	}
	return e.ApplicationError.Error()
}

// Source returns the stylesheet source name associated with the error
func (e *ParseError) Source() string {
	return e.source
}

// Line returns the 1-based line of the offending input
func (e *ParseError) Line() int {
	return e.line
}

// Col returns the 1-based column of the offending input
func (e *ParseError) Col() int {
	return e.col
}

// ThemeError represents errors related to theme registration and switching
type ThemeError struct {
	ApplicationError
	themeName string
}

// NewThemeError creates a new theme error
func NewThemeError(msg string, themeName string, kind ErrorKind, err error) *ThemeError {
	return &ThemeError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		themeName: themeName,
	}
}

// Error returns the theme error message
func (e *ThemeError) Error() string {
	if e.themeName != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.themeName, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.themeName)
	}
	return e.ApplicationError.Error()
}

// ThemeName returns the theme name associated with the error
func (e *ThemeError) ThemeName() string {
	return e.themeName
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsParseError checks if the error is a stylesheet parse error
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsUnknownTheme checks if the error reports a theme name that is not registered
func IsUnknownTheme(err error) bool {
	var themeErr *ThemeError
	if errors.As(err, &themeErr) {
		return themeErr.Kind() == ThemeNotFound
	}
	return false
}

// IsThemeInvalid checks if the error reports a theme whose source failed to parse
func IsThemeInvalid(err error) bool {
	var themeErr *ThemeError
	if errors.As(err, &themeErr) {
		return themeErr.Kind() == ThemeInvalid
	}
	return false
}
