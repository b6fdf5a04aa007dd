package edmxerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched through errors.Is by the typed errors below.
var (
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse error")
	// ErrConversion matches every *ConversionError.
	ErrConversion = errors.New("conversion error")
	// ErrConfig matches every *ConfigError.
	ErrConfig = errors.New("configuration error")
)

// format renders "<kind><location>: <message>: <cause>", leaving out empty parts.
func format(kind error, location, message string, cause error) string {
	var b strings.Builder
	b.WriteString(kind.Error())
	b.WriteString(location)
	if message != "" {
		b.WriteString(": ")
		b.WriteString(message)
	}
	if cause != nil {
		b.WriteString(": ")
		b.WriteString(cause.Error())
	}
	return b.String()
}

// ParseError is returned when XML input cannot be turned into an element tree.
type ParseError struct {
	// Path is the file path or a synthetic name such as "ParseBytes.xml".
	Path string
	// Offset is the input offset at which decoding stopped, or 0.
	Offset  int64
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	var loc string
	if e.Path != "" {
		loc = " in " + e.Path
	}
	if e.Offset > 0 {
		loc += fmt.Sprintf(" at offset %d", e.Offset)
	}
	return format(ErrParse, loc, e.Message, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ConversionError is returned when the element tree cannot be converted: the
// root is not edmx:Edmx, an element appears without the ancestor it writes into
// (a Parameter outside any Action or Function), or strict mode saw warnings.
type ConversionError struct {
	// Path is the element path, e.g. "Edmx/DataServices/Schema[ns]/Action[A]/Parameter[p]".
	Path string
	// Element is the local name of the offending element.
	Element string
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	at := e.Path
	if at == "" {
		at = e.Element
	}
	var loc string
	if at != "" {
		loc = " at " + at
	}
	return format(ErrConversion, loc, e.Message, e.Cause)
}

func (e *ConversionError) Unwrap() error { return e.Cause }

func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// ConfigError reports an invalid option: a missing or ambiguous input source,
// an unknown output format, and the like.
type ConfigError struct {
	Option string
	// Value is the rejected value, if any.
	Value   any
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	var loc string
	if e.Option != "" {
		loc = " for " + e.Option
	}
	if e.Value != nil {
		loc += fmt.Sprintf(" (value: %v)", e.Value)
	}
	return format(ErrConfig, loc, e.Message, e.Cause)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
