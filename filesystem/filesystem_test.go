package filesystem

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aarroyoc/scryer-http-lyncex/test"
)

func TestReadWriteFile(t *testing.T) {
	fs := NewLocalFilesystem()
	path := filepath.Join(t.TempDir(), "sub", "data.bin")

	content := make([]byte, 256)
	for i := range content {
		content[i] = byte(i)
	}

	test.NoError(t, fs.WriteFile(path, content))

	read, err := fs.ReadFile(path)
	test.NoError(t, err)
	test.True(t, bytes.Equal(read, content), "read bytes differ from written bytes")

	size, err := fs.FileSize(path)
	test.NoError(t, err)
	test.Equal(t, int64(len(content)), size)
}

func TestReadFileNotFound(t *testing.T) {
	fs := NewLocalFilesystem()

	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestFileExists(t *testing.T) {
	fs := NewLocalFilesystem()
	path := filepath.Join(t.TempDir(), "exists.txt")

	exists, err := fs.FileExists(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("file should not exist yet")
	}

	if err := fs.WriteFile(path, []byte("x")); err != nil {
		t.Fatal(err)
	}

	exists, err = fs.FileExists(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("file should exist")
	}

	isFile, err := fs.IsFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !isFile {
		t.Error("expected a regular file")
	}
}

func TestDeleteFile(t *testing.T) {
	fs := NewLocalFilesystem()
	path := filepath.Join(t.TempDir(), "doomed.txt")

	if err := fs.WriteFile(path, []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := fs.DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}

	exists, err := fs.FileExists(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("file should be gone")
	}

	// Deleting a missing file is not an error.
	if err := fs.DeleteFile(path); err != nil {
		t.Errorf("DeleteFile on missing file: %v", err)
	}
}

func TestCopy(t *testing.T) {
	fs := NewLocalFilesystem()
	dir := t.TempDir()
	source := filepath.Join(dir, "src.bin")
	destination := filepath.Join(dir, "dst.bin")

	content := []byte{0x00, 0xFF, 0x10, 0x80}
	if err := fs.WriteFile(source, content); err != nil {
		t.Fatal(err)
	}

	if err := Copy(fs, source, destination); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	copied, err := fs.ReadFile(destination)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(copied, content) {
		t.Error("copied bytes differ")
	}
}
