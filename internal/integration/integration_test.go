// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ccat/internal/app"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestPlainCopy(t *testing.T) {
	f := writeFile(t, "f.txt", "hello\nworld\n")
	code, out, errOut := run(t, f)
	require.Zero(t, code, "stderr: %s", errOut)
	require.Equal(t, "hello\nworld\n", out)
}

func TestMultiFileNumbering(t *testing.T) {
	a := writeFile(t, "a.txt", "a\n")
	b := writeFile(t, "b.txt", "b\n")
	code, out, _ := run(t, "-n", a, b)
	require.Zero(t, code)
	require.Equal(t, "     1\ta\n     2\tb\n", out)
}

func TestNumberNonblank(t *testing.T) {
	f := writeFile(t, "f.txt", "a\n\nb\n")
	code, out, _ := run(t, "-b", f)
	require.Zero(t, code)
	require.Equal(t, "     1\ta\n\n     2\tb\n", out)
}

func TestShowAllCombined(t *testing.T) {
	f := writeFile(t, "f.txt", "a\tb\r\n\x01\n")
	code, out, _ := run(t, "-A", f)
	require.Zero(t, code)
	require.Equal(t, "a^Ib^M$\n^A$\n", out)
}

func TestSqueezeEndToEnd(t *testing.T) {
	f := writeFile(t, "f.txt", "a\n\n\n\nb\n")
	code, out, _ := run(t, "-s", f)
	require.Zero(t, code)
	require.Equal(t, "a\n\nb\n", out)
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	code, _, errOut := run(t, missing)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "No such file or directory")
	require.Contains(t, errOut, "nope")
}

func TestUnknownFlag(t *testing.T) {
	code, _, errOut := run(t, "-x")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "Try 'ccat --help' for more information.")
}

func TestHelp(t *testing.T) {
	code, out, _ := run(t, "--help")
	require.Zero(t, code)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "--show-nonprinting")
	require.Contains(t, out, "read standard input")
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	require.Zero(t, code)
	require.Regexp(t, `^ccat v\d+`, out)
}

func TestOperandsAfterDoubleDash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "-n")
	require.NoError(t, os.WriteFile(path, []byte("literal\n"), 0o644))
	code, out, errOut := run(t, "--", path)
	require.Zero(t, code, "stderr: %s", errOut)
	require.Equal(t, "literal\n", out)
}
