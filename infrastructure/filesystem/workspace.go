package filesystem

import (
	"fmt"
	"os"

	"get-badapple/domain/video"
)

// Workspace implements video.Workspace using the os package
type Workspace struct{}

// NewWorkspace creates a new filesystem workspace
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// RemoveFile deletes the file at path. A missing file is treated as success.
func (w *Workspace) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// ResetDir deletes the directory at path recursively if present, then
// recreates it empty
func (w *Workspace) ResetDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to clear directory %s: %w", path, err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// Ensure Workspace implements video.Workspace
var _ video.Workspace = (*Workspace)(nil)
