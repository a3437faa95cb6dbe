package ports

// FileSystem is the read and mkdir surface the command-line builder needs.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// FindByPrefix returns the regular files of dir whose names start with prefix, sorted by name.
	FindByPrefix(dir, prefix string) ([]string, error)

	// ListJars returns the .jar files of dir sorted by name.
	ListJars(dir string) ([]string, error)

	// IsFile reports whether path exists and is a regular file.
	IsFile(path string) bool

	// EnsureDir creates dir and its parents if they are missing.
	EnsureDir(dir string) error
}
