package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"
)

func TestIsBrokenPipe(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{syscall.EPIPE, true},
		{fmt.Errorf("write |1: %w", syscall.EPIPE), true},
		{io.ErrClosedPipe, true},
		{errors.New("disk full"), false},
	}
	for _, tt := range tests {
		if got := IsBrokenPipe(tt.err); got != tt.want {
			t.Errorf("IsBrokenPipe(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
