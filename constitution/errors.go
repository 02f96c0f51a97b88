package constitution

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// ErrNotFound is returned by Read when no constitution file exists.
var ErrNotFound = errors.New("constitution not found")

// ErrDisabled is returned by Read when the constitution's root is a false
// JSON value (null, false, 0 or "").
var ErrDisabled = errors.New("constitution disables linting")

// ParseError is returned by Read when the constitution file exists but
// cannot be read or is not valid JSON.
type ParseError struct {
	Path string
	// Diags holds the JSON diagnostics. It is empty for read errors.
	Diags hcl.Diagnostics
	// Err is the underlying read error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("read %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Path, e.Diags.Error())
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Diags
}
