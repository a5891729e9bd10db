package filesystem

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	ErrFileNotFound = fmt.Errorf("filesystem: file not found")
	ErrInvalidPath  = fmt.Errorf("filesystem: invalid path")
)

// Filesystem is the small slice of file access the server needs: reading
// static resources and a few checks around them. Implementations must be
// safe for concurrent use.
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte) error
	DeleteFile(path string) error

	FileExists(path string) (bool, error)
	FileSize(path string) (int64, error)
	IsFile(path string) (bool, error)

	AbsolutePath(path string) (string, error)
}

type localFilesystem struct{}

func NewLocalFilesystem() Filesystem {
	return &localFilesystem{}
}

// ReadFile returns the file's bytes exactly as stored.
func (fs *localFilesystem) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return data, nil
}

func (fs *localFilesystem) WriteFile(path string, content []byte) error {
	if path == "" {
		return ErrInvalidPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Error("closing file failed", "path", path, "error", closeErr)
		}
	}()

	if _, err := file.Write(content); err != nil {
		return err
	}
	return file.Sync()
}

func (fs *localFilesystem) DeleteFile(path string) error {
	exists, err := fs.FileExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return os.Remove(path)
}

func (fs *localFilesystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (fs *localFilesystem) FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return 0, err
	}
	return info.Size(), nil
}

func (fs *localFilesystem) IsFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (fs *localFilesystem) AbsolutePath(path string) (string, error) {
	return filepath.Abs(path)
}

// Copy duplicates a file byte for byte.
func Copy(fs Filesystem, source, destination string) error {
	if source == "" || destination == "" {
		return ErrInvalidPath
	}

	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil {
			slog.Error("closing source file failed", "path", source, "error", closeErr)
		}
	}()

	out, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			slog.Error("closing destination file failed", "path", destination, "error", closeErr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
