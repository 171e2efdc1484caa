// Package errs defines the error taxonomy reported by argument parsing.
// Messages are resolved through the i18n bundle so callers can surface
// them in the configured language.
package errs

import (
	"errors"
	"strings"

	"github.com/combin/argv/i18n"
)

// Sentinels for use with errors.Is. The concrete types below carry the
// structured detail.
var (
	ErrMissingArgument      = errors.New("missing argument")
	ErrUnrecognizedArgument = errors.New("unrecognized argument")
	ErrInvalidValue         = errors.New("invalid value")
	ErrUnknownVariant       = errors.New("unknown variant")
	ErrExtraArguments       = errors.New("extra arguments")
	ErrDuplicateName        = errors.New("duplicate name")
	ErrInvalidName          = errors.New("invalid name")
	ErrMissingValue         = errors.New("missing value")
)

// MissingArgumentError reports a required argument absent from the token
// stream. Forms holds the rendered name forms, e.g. "--[no-]color | -c".
type MissingArgumentError struct {
	Long  []string
	Short []string
	Forms string
}

func (e *MissingArgumentError) Error() string {
	return i18n.Default().T(i18n.ErrMissingArgumentKey, e.forms())
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

func (e *MissingArgumentError) forms() string {
	if e.Forms != "" {
		return e.Forms
	}
	forms := make([]string, 0, len(e.Long)+len(e.Short))
	for _, l := range e.Long {
		forms = append(forms, "--"+l)
	}
	for _, s := range e.Short {
		forms = append(forms, "-"+s)
	}
	return strings.Join(forms, " | ")
}

// UnrecognizedArgumentError reports a prefixed token which matched no
// declared name under any scheme.
type UnrecognizedArgumentError struct {
	Token string
}

func (e *UnrecognizedArgumentError) Error() string {
	return i18n.Default().T(i18n.ErrUnrecognizedArgumentKey, e.Token)
}

func (e *UnrecognizedArgumentError) Is(target error) bool {
	return target == ErrUnrecognizedArgument
}

// InvalidValueError reports a raw value which could not be converted to
// the argument's type, or a value name with no value at all (Cause is
// ErrMissingValue in that case).
type InvalidValueError struct {
	Name  string
	Raw   string
	Cause error
}

func (e *InvalidValueError) Error() string {
	cause := ""
	if e.Cause != nil {
		cause = e.Cause.Error()
	}
	return i18n.Default().T(i18n.ErrInvalidValueKey, e.Name, e.Raw, cause)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func (e *InvalidValueError) Unwrap() error {
	return e.Cause
}

// UnknownVariantError reports a converted value outside the declared
// allowed values.
type UnknownVariantError struct {
	Name    string
	Raw     string
	Allowed []string
}

func (e *UnknownVariantError) Error() string {
	return i18n.Default().T(i18n.ErrUnknownVariantKey, e.Name, e.Raw, strings.Join(e.Allowed, ", "))
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// ExtraArgumentsError reports tokens left unconsumed once matching ended.
type ExtraArgumentsError struct {
	Tokens []string
}

func (e *ExtraArgumentsError) Error() string {
	return i18n.Default().T(i18n.ErrExtraArgumentsKey, strings.Join(e.Tokens, ", "))
}

func (e *ExtraArgumentsError) Is(target error) bool {
	return target == ErrExtraArguments
}

// DuplicateNameError reports two leaves able to claim the same token
// through a shared name. It is raised at construction time and never
// reaches a parse.
type DuplicateNameError struct {
	Name string
	Kind string
}

func (e *DuplicateNameError) Error() string {
	return i18n.Default().T(i18n.ErrDuplicateNameKey, e.Kind+" "+e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// InvalidNameError reports a name violating a construction invariant,
// e.g. an empty long name or a multi-grapheme short name.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return i18n.Default().T(i18n.ErrInvalidNameKey, e.Name, e.Reason)
}

func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

// MissingValue returns the localized error used as the Cause of an
// InvalidValueError when a value name appears without a value.
func MissingValue() error {
	return missingValueError{}
}

type missingValueError struct{}

func (missingValueError) Error() string {
	return i18n.Default().T(i18n.ErrMissingValueKey)
}

func (missingValueError) Is(target error) bool {
	return target == ErrMissingValue
}
