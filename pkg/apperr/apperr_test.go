package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"conflict", New(Conflict, "duplicate path %s", "/dashboard"), Conflict},
		{"not found", New(NotFound, "menu not found"), NotFound},
		{"wrapped", fmt.Errorf("create menu: %w", New(InvalidArgument, "roles required")), InvalidArgument},
		{"plain error", errors.New("boom"), Unknown},
		{"nil", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Unauthenticated, fiber.StatusUnauthorized},
		{Forbidden, fiber.StatusForbidden},
		{InvalidArgument, fiber.StatusBadRequest},
		{NotFound, fiber.StatusNotFound},
		{Conflict, fiber.StatusConflict},
	}

	for _, tt := range tests {
		if got := HTTPStatus(New(tt.kind, "x")); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}

	if got := HTTPStatus(errors.New("boom")); got != fiber.StatusInternalServerError {
		t.Errorf("HTTPStatus(plain) = %d, want 500", got)
	}
}
