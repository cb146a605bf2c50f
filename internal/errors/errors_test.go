package errors

import (
	"fmt"
	"io"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	t.Run("MessageAndCause", func(t *testing.T) {
		err := New(CodeStorageFailed, "write blob", io.ErrShortWrite)
		if got := err.Error(); got != "write blob: short write" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("CauseOnly", func(t *testing.T) {
		err := New(CodeDecodeFailed, "", io.EOF)
		if got := err.Error(); got != "EOF" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("CodeOnly", func(t *testing.T) {
		err := New(CodeNotFound, "", nil)
		if got := err.Error(); got != "not_found" {
			t.Fatalf("unexpected message %q", got)
		}
	})
}

func TestCodeOfWalksChain(t *testing.T) {
	base := New(CodeInvalidColor, "bad seed", nil)
	wrapped := fmt.Errorf("set primary: %w", base)

	if got := CodeOf(wrapped); got != CodeInvalidColor {
		t.Fatalf("expected %s, got %s", CodeInvalidColor, got)
	}
	if !IsCode(wrapped, CodeInvalidColor) {
		t.Fatal("expected IsCode to match wrapped error")
	}
	if CodeOf(io.EOF) != CodeUnknown {
		t.Fatal("expected unknown code for plain error")
	}
}
