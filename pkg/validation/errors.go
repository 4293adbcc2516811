// Package validation defines engine-internal errors
package validation

import "errors"

var (
	errNoBackend = errors.New("no backend configured")
)
