// Package errorsx wraps github.com/pkg/errors with a few helpers shared by the library and the
// command.
package errorsx

import (
	"fmt"
	"log"

	pkgerrors "github.com/pkg/errors"
)

// String useful wrapper for string constants as errors.
type String string

func (t String) Error() string {
	return string(t)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Wrap returns nil if err is nil.
func Wrap(err error, msg string) error {
	return pkgerrors.Wrap(err, msg)
}

// Wrapf returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Log logs that the error occurred but otherwise ignores it.
func Log(err error) {
	if err == nil {
		return
	}

	if cause := log.Output(2, fmt.Sprintln(err)); cause != nil {
		log.Println(cause)
	}
}
