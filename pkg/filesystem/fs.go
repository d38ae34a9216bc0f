package filesystem

import "io/fs"

// FS is the read-only filesystem surface used by collection and matching.
// ReadDir must return entries sorted by name.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}
