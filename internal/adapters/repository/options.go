package repository

import "io/fs"

// Option applies a configuration option to a Loader.
type Option func(*Loader)

// WithDir loads catalog files from a directory instead of the embedded
// sample catalogs. An empty dir is ignored.
func WithDir(dir string) Option {
	return func(l *Loader) {
		if dir != "" {
			l.dir = dir
		}
	}
}

// WithFS loads catalog files from fsys. It takes precedence over WithDir.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		if fsys != nil {
			l.fsys = fsys
		}
	}
}
