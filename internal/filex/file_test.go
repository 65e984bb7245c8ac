package filex

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data", "records", "users.txt")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Join(tmp, "data", "records"))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	require.NoError(t, EnsureParentDir("users.txt"))
}

func TestEnsureParentDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o660))

	err := EnsureParentDir(filepath.Join(blocker, "users.txt"))
	require.Error(t, err, "should fail when a file exists with the directory name")
}

func TestAppendLine_AppendsAndCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "log.txt")

	require.NoError(t, AppendLine(path, "first"))
	require.NoError(t, AppendLine(path, "second, with | separators"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond, with | separators\n", string(data))
}

func TestAppendLine_ErrorWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()

	err := AppendLine(dir, "line")
	require.Error(t, err)
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("a,1\r\nb,2\n\nc,3"), 0o600))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"a,1", "b,2", "", "c,3"}, lines)
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadLines_RoundTripWithAppendLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.txt")
	want := []string{"one", "two", "three"}
	for _, l := range want {
		require.NoError(t, AppendLine(path, l))
	}

	got, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadLines_LongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.txt")
	long := "a@b.co," + strings.Repeat("P1", 1<<20)
	require.NoError(t, os.WriteFile(path, []byte(long+"\nc@d.co,X1\n"), 0o600))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, long, lines[0])
	require.Equal(t, "c@d.co,X1", lines[1])
}
