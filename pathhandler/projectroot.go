// Package pathhandler finds the root directory of a project: the nearest
// ancestor of a start directory, inclusive, that directly contains a marker
// file such as Cargo.lock or go.mod.
//
// The returned directory held the marker when it was listed. Nothing is
// promised about it afterwards; a concurrent change to the tree between the
// listing and the caller's use of the path is not detected.
package pathhandler

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"os"
	"path/filepath"
)

// Marker is the exact, case-sensitive name of the file that marks a root.
type Marker string

// Markers with known meaning. Any other file name works as a Marker too.
const (
	CargoLock Marker = "Cargo.lock"
	CargoToml Marker = "Cargo.toml"
	GoMod     Marker = "go.mod"
	GoSum     Marker = "go.sum"
)

// DefaultMarker is the marker used by ProjectRoot.
const DefaultMarker = CargoLock

// Lister returns the names of the direct entries of dir.
type Lister func(dir string) ([]string, error)

// Option configures a Finder in NewFinder.
type Option func(*Finder)

// WithLister replaces the directory lister, mostly for tests.
func WithLister(list Lister) Option {
	return func(f *Finder) {
		f.list = list
	}
}

// WithLogger enables debug tracing of every directory visited.
func WithLogger(log zerolog.Logger) Option {
	return func(f *Finder) {
		f.log = log
	}
}

// Finder searches the ancestor chain for one marker. It is not mutated after
// NewFinder, so a single value may be shared between goroutines.
type Finder struct {
	marker Marker
	list   Lister
	log    zerolog.Logger
}

// NewFinder returns a Finder for marker that lists directories with ReadNames
// and logs nothing unless WithLogger is given.
func NewFinder(marker Marker, opts ...Option) *Finder {
	f := &Finder{
		marker: marker,
		list:   ReadNames,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Marker returns the file name f searches for.
func (f *Finder) Marker() Marker {
	return f.marker
}

// Find walks from startDir up to the filesystem root and returns the first
// directory containing the marker. An empty startDir means the current
// working directory, read on every call.
func (f *Finder) Find(startDir string) (string, error) {
	if f.marker == "" {
		return "", ErrEmptyMarker
	}

	start, err := startPath(startDir)
	if err != nil {
		return "", err
	}

	dir := start
	for {
		f.log.Debug().Str("dir", dir).Str("marker", string(f.marker)).Msg("checking directory")

		names, err := f.list(dir)
		if err != nil {
			return "", &ListingError{Dir: dir, Err: err}
		}
		for _, name := range names {
			if name == string(f.marker) {
				return dir, nil
			}
		}

		parent, ok := parentDir(dir)
		if !ok {
			return "", &NotFoundError{Start: start, Marker: f.marker}
		}
		dir = parent
	}
}

// ProjectRoot looks for DefaultMarker starting from the working directory.
func ProjectRoot() (string, error) {
	return NewFinder(DefaultMarker).Find("")
}

// FindProjectRoot looks for marker starting from the working directory.
func FindProjectRoot(marker Marker) (string, error) {
	return NewFinder(marker).Find("")
}

// Find looks for marker starting from startDir, or from the working
// directory when startDir is empty.
func Find(startDir string, marker Marker) (string, error) {
	return NewFinder(marker).Find(startDir)
}

// Ancestors returns path and each of its parents, nearest first, ending with
// the filesystem root. path is cleaned but not made absolute.
func Ancestors(path string) []string {
	dir := filepath.Clean(path)
	chain := []string{dir}
	for {
		parent, ok := parentDir(dir)
		if !ok {
			return chain
		}
		chain = append(chain, parent)
		dir = parent
	}
}

// ReadNames is the default Lister. It reads entry names only and never
// stats the entries.
func ReadNames(dir string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, errors.Wrap(err, "open directory")
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, errors.Wrap(err, "read directory entries")
	}
	return names, nil
}

func startPath(startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", &EnvironmentError{Err: err}
		}
		return filepath.Clean(wd), nil
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &EnvironmentError{Err: errors.Wrapf(err, "absolute path of %q", startDir)}
	}
	return abs, nil
}

// parentDir reports false once dir is the filesystem root.
func parentDir(dir string) (string, bool) {
	parent := filepath.Dir(dir)
	if parent == dir {
		return "", false
	}
	return parent, true
}
