// Package safefile reads and writes assessment files with protection
// against symlink tricks. Assessments may carry workplace data; a write
// through a planted symlink must fail instead of clobbering an unrelated
// file.
package safefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

var (
	// ErrInvalidPath indicates that the specified file path is invalid.
	ErrInvalidPath = errors.New("invalid file path")

	// ErrIsSymlink indicates that the path or one of its parents is a
	// symbolic link, which is not allowed.
	ErrIsSymlink = errors.New("path is a symbolic link")

	// ErrFileTooLarge indicates that the file exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file too large")
)

// MaxFileSize is the maximum allowed size for ReadFile (64 MB). Assessment
// files are far smaller; the bound caps memory on a corrupt or hostile file.
const MaxFileSize = 64 * 1024 * 1024

// WriteFile writes content to path, creating or truncating the file. The
// open uses O_NOFOLLOW and every parent directory is checked for symlinks
// after the open, so a symlink planted at any path component makes the
// write fail rather than redirect.
func WriteFile(path string, content []byte, perm os.FileMode) (err error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	// #nosec G304 - the path is re-validated after opening
	file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC|syscall.O_NOFOLLOW, perm)
	if err != nil {
		if isNoFollowError(err) {
			return ErrIsSymlink
		}
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	if err := verifyParents(absPath); err != nil {
		return err
	}
	if err := requireRegular(file, absPath); err != nil {
		return err
	}

	if _, err = file.Write(content); err != nil {
		return fmt.Errorf("failed to write to %s: %w", absPath, err)
	}
	return nil
}

// ReadFile reads path with the same symlink checks as WriteFile and
// enforces MaxFileSize.
func ReadFile(path string) (data []byte, err error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	// #nosec G304 - the path is re-validated after opening
	file, err := os.OpenFile(absPath, os.O_RDONLY|syscall.O_NOFOLLOW, 0)
	if err != nil {
		if isNoFollowError(err) {
			return nil, ErrIsSymlink
		}
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	if err := verifyParents(absPath); err != nil {
		return nil, err
	}
	if err := requireRegular(file, absPath); err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	content, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(content)) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return content, nil
}

// verifyParents walks from the file's directory to the root and rejects
// any component that is a symlink. Called after the file is open, so a
// race that swaps a directory for a symlink is caught here.
func verifyParents(absPath string) error {
	current := filepath.Dir(absPath)
	for {
		parent := filepath.Dir(current)
		if parent == current {
			return nil
		}

		fi, err := os.Lstat(current)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("failed to stat %s: %w", current, err)
		}
		if fi.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("%w: %s", ErrIsSymlink, current)
		}
		current = parent
	}
}

// requireRegular rejects devices, pipes, and other non-regular files. The
// check uses the open descriptor, not the path.
func requireRegular(file *os.File, path string) error {
	fi, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: not a regular file: %s", ErrInvalidPath, path)
	}
	return nil
}

// isNoFollowError reports whether the error came from O_NOFOLLOW hitting
// a symlink.
func isNoFollowError(err error) bool {
	var e *os.PathError
	if !errors.As(err, &e) {
		return false
	}
	return errors.Is(e.Err, syscall.ELOOP) || errors.Is(e.Err, syscall.EMLINK)
}
