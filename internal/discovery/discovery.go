// Package discovery locates the UCI engine executable.
//
// Discovery searches in the following order:
//  1. The explicit path in Config.EnginePath (if provided). A bare name
//     without a path separator is also looked up in the system PATH.
//  2. The engine names in Config.Names in the system PATH
//  3. Common installation directories (/usr/local/bin, /usr/bin, /usr/games,
//     ~/.local/bin)
//
// An explicit path that cannot be found is an error; the remaining locations
// are not searched in that case.
package discovery

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/wagiedev/uciperf/internal/errors"
)

// DefaultNames are the engine names searched when no explicit path is given.
var DefaultNames = []string{"stockfish"}

// Config holds configuration for engine discovery.
type Config struct {
	// EnginePath is an explicit engine path that skips the PATH search.
	EnginePath string

	// Names are the executable names searched for when EnginePath is empty.
	// If nil, DefaultNames is used.
	Names []string

	// Logger is an optional logger for discovery operations.
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates the engine executable.
type Discoverer interface {
	// Discover returns the path of the engine executable.
	Discover() (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new engine discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover implements Discoverer.
func (d *discoverer) Discover() (string, error) {
	if d.cfg.EnginePath != "" {
		return d.findExplicit(d.cfg.EnginePath)
	}

	names := d.cfg.Names
	if names == nil {
		names = DefaultNames
	}

	searchedPaths := make([]string, 0, 1+4*len(names))

	for _, name := range names {
		d.log.Debug("Searching for engine in PATH", "name", name)

		if path, err := exec.LookPath(name); err == nil {
			d.log.Debug("Found engine in PATH", "path", path)

			return path, nil
		}
	}

	searchedPaths = append(searchedPaths, "$PATH")

	for _, path := range commonPaths(names) {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common path", "path", path)

		if isFile(path) {
			d.log.Debug("Found engine at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("Engine not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.EngineNotFoundError{SearchedPaths: searchedPaths}
}

// findExplicit resolves a configured engine path.
func (d *discoverer) findExplicit(path string) (string, error) {
	d.log.Debug("Using explicit engine path", "engine_path", path)

	if isFile(path) {
		return path, nil
	}

	if !strings.ContainsRune(path, filepath.Separator) {
		if found, err := exec.LookPath(path); err == nil {
			d.log.Debug("Found explicit engine name in PATH", "path", found)

			return found, nil
		}

		return "", &errors.EngineNotFoundError{SearchedPaths: []string{path, "$PATH"}}
	}

	d.log.Debug("Explicit engine path not found", "engine_path", path)

	return "", &errors.EngineNotFoundError{SearchedPaths: []string{path}}
}

func commonPaths(names []string) []string {
	dirs := []string{"/usr/local/bin", "/usr/bin", "/usr/games"}

	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(homeDir, ".local/bin"))
	}

	paths := make([]string, 0, len(dirs)*len(names))

	for _, name := range names {
		for _, dir := range dirs {
			paths = append(paths, filepath.Join(dir, name))
		}
	}

	return paths
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
