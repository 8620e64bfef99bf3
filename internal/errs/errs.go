// Package errs classifies pipeline failures into a closed set of kinds.
package errs

import (
	"errors"
	"fmt"
)

// Kind identifies which stage of the pipeline an error came from.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindNetwork
	KindParse
	KindStorage
	KindRender
	KindMail
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindStorage:
		return "storage"
	case KindRender:
		return "render"
	case KindMail:
		return "mail"
	default:
		return "unknown"
	}
}

// Error tags an underlying error with the stage it came from. The
// underlying chain stays reachable through Unwrap, so errors.Is and
// errors.As still see the root cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + " error: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with kind. A nil err returns nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Errorf formats like fmt.Errorf and tags the result with kind.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the kind of the outermost tag in err's chain, or
// KindUnknown for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
