// Package multifs merges several hashed filesystems into one read-only fs.FS.
// Lookup order follows registration order; the first filesystem that can open
// the name wins.
package multifs

import (
	"io/fs"

	"github.com/benbjohnson/hashfs"
)

type MultiFS struct {
	instances []*hashfs.FS
}

func New(instances ...*hashfs.FS) *MultiFS {
	return &MultiFS{instances: instances}
}

func (m *MultiFS) Open(name string) (fs.File, error) {
	for _, instance := range m.instances {
		f, err := instance.Open(name)
		if err == nil {
			return f, nil
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
