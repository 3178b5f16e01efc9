package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"conflict", Conflict("dup"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("no"), http.StatusUnauthorized},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", NotFound("missing")), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"internal", Internal("db", errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPublicMessageHidesInternalDetail(t *testing.T) {
	if got := PublicMessage(Internal("query tasks", errors.New("connection refused"))); got != "Internal server error" {
		t.Errorf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(errors.New("raw")); got != "Internal server error" {
		t.Errorf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(NotFound("Task not found")); got != "Task not found" {
		t.Errorf("PublicMessage() = %q", got)
	}
}

func TestInternalUnwraps(t *testing.T) {
	cause := errors.New("cause")
	err := Internal("ctx", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the cause")
	}
	if err.Error() != "ctx: cause" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	if Wrap("op", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
	nf := NotFound("Task not found")
	if got := Wrap("op", fmt.Errorf("tx: %w", nf)); KindOf(got) != KindNotFound {
		t.Errorf("Wrap kept kind %v", KindOf(got))
	}
	if got := Wrap("op", errors.New("disk full")); KindOf(got) != KindInternal {
		t.Errorf("Wrap kind = %v, want internal", KindOf(got))
	}
}
