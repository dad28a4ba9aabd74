package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestError_ErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeConfig, "missing subscription id"),
			want: "CONFIG_INVALID: missing subscription id",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeExec, "azd env set failed", stderrors.New("exit status 1")),
			want: "EXEC_FAILED: azd env set failed: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCode_UnwrapsThroughWrapping(t *testing.T) {
	inner := New(ErrCodePrecondition, "azd not found")
	outer := fmt.Errorf("preflight: %w", inner)

	if got := Code(outer); got != ErrCodePrecondition {
		t.Errorf("Code() = %q, want %q", got, ErrCodePrecondition)
	}
	if !Is(outer, ErrCodePrecondition) {
		t.Error("Is() = false, want true")
	}
}

func TestCode_PlainErrorIsInternal(t *testing.T) {
	if got := Code(stderrors.New("boom")); got != ErrCodeInternal {
		t.Errorf("Code() = %q, want %q", got, ErrCodeInternal)
	}
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := stderrors.New("exit status 2")
	err := Wrap(ErrCodeExec, "command failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is did not match wrapped cause")
	}
}
