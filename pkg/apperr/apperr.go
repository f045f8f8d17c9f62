package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error into one of the outcome categories the API
// surfaces to callers. Every kind is terminal for the request; there is
// no retry or partial-failure handling anywhere in the service layer.
type Kind int

const (
	Unknown Kind = iota
	Unauthenticated
	Forbidden
	InvalidArgument
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case InvalidArgument:
		return "invalid_argument"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds a classified error. Message is shown to the caller as-is.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the classification of err, or Unknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// HTTPStatus maps an error to the status code the Fiber error handler returns.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Unauthenticated:
		return fiber.StatusUnauthorized
	case Forbidden:
		return fiber.StatusForbidden
	case InvalidArgument:
		return fiber.StatusBadRequest
	case NotFound:
		return fiber.StatusNotFound
	case Conflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
