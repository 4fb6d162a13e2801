package fs

import (
	"os"

	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// BridgeFS wraps the filesystem operations used by the bridge.
type BridgeFS interface {
	MkdirAll(path string) error
	DirExists(path string) (bool, error)
	FileExists(path string) (bool, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
	TempFile(dir, pattern string) (*os.File, error)
	Remove(name string) error
}

type fsImpl struct{}

// New creates a new BridgeFS.
func New() BridgeFS {
	return fsImpl{}
}

// MkdirAll creates a directory and all its parents.
func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, os.ModePerm) }

func (fsImpl) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (fsImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fsImpl) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0644)
}

// TempFile creates a new temporary file, see os.CreateTemp.
func (fsImpl) TempFile(dir, pattern string) (*os.File, error) {
	return os.CreateTemp(dir, pattern)
}

func (fsImpl) Remove(name string) error {
	return os.Remove(name)
}
