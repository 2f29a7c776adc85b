// internal/sources/sources_test.go
package sources

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenStdin(t *testing.T) {
	rc, err := Open("-", strings.NewReader("from stdin"))
	if err != nil {
		t.Fatalf("open -: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil || string(data) != "from stdin" {
		t.Fatalf("got (%q, %v)", data, err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rc, err := Open(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "hello" {
		t.Fatalf("got %q", data)
	}
}

func TestOpenNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	_, err := Open(path, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "No such file or directory") {
		t.Fatalf("message %q lacks the classic wording", err.Error())
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Path != path {
		t.Fatalf("path not carried: %v", err)
	}
}

func TestIsNotFoundRejectsOtherErrors(t *testing.T) {
	if IsNotFound(errors.New("boom")) || IsNotFound(nil) {
		t.Fatal("IsNotFound too permissive")
	}
}
