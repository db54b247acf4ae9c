package video

// FileChecker defines the interface for checking file existence
// This allows mocking filesystem checks in tests
type FileChecker interface {
	// Exists returns true if the file exists
	Exists(path string) bool
}

// Workspace defines the filesystem operations the pipeline needs to clear
// stale artifacts between runs
type Workspace interface {
	// RemoveFile deletes the file at path; a missing file is not an error
	RemoveFile(path string) error

	// ResetDir deletes the directory at path recursively if it exists, then
	// recreates it empty
	ResetDir(path string) error
}
