// SPDX-License-Identifier: MPL-2.0

package toolpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// SourceExplicit indicates the path came from an explicit override
	// (flag or configuration value).
	SourceExplicit ResolutionSource = "explicit-override"
	// SourceEnvironment indicates the path came from the environment.
	SourceEnvironment ResolutionSource = "environment"
	// SourceDefault indicates the built-in default was used.
	SourceDefault ResolutionSource = "default"

	// AdvisoryOutsideHome is the advisory code for a tools directory that
	// resolves outside the user's home directory.
	AdvisoryOutsideHome = "tools_dir_outside_home"
)

var (
	// ErrNotAbsolute is the sentinel error wrapped by NotAbsoluteError.
	ErrNotAbsolute = errors.New("resolved tools directory is not absolute")
	// ErrProtectedPath is the sentinel error wrapped by ProtectedPathError.
	ErrProtectedPath = errors.New("tools directory inside a protected system directory")
)

type (
	// ResolutionSource identifies which input supplied the resolved path.
	ResolutionSource string

	// ResolvedPath is the outcome of one resolution. It is recomputed on
	// every call and never cached.
	ResolvedPath struct {
		// Path is the absolute, cleaned tools directory.
		Path string
		// Source identifies the input that won precedence.
		Source ResolutionSource
		// Exists reports whether the path currently exists on disk. The
		// resolver never creates it.
		Exists bool
	}

	// Advisory is a non-fatal note about a successful resolution.
	Advisory struct {
		// Code is a machine-readable identifier.
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the resolved path the advisory refers to.
		Path string
	}

	// NotAbsoluteError is returned when the resolved path is not absolute.
	// Normal resolution always yields an absolute path; this guards the
	// invariant. It wraps ErrNotAbsolute for errors.Is() compatibility.
	NotAbsoluteError struct {
		Path string
	}

	// ProtectedPathError is returned when the resolved path equals or is
	// nested under a protected system directory. It wraps ErrProtectedPath
	// for errors.Is() compatibility.
	ProtectedPathError struct {
		Path string
		// Root is the protected directory the path fell under.
		Root string
	}

	// Options carries all resolution inputs. Nothing is read from ambient
	// process state; callers supply the environment value and home
	// directory they want honored.
	Options struct {
		// Explicit is the override from a flag or config value. Wins when
		// non-empty.
		Explicit string
		// EnvValue is the value of the tools-directory environment
		// variable. Used when Explicit is empty.
		EnvValue string
		// Default is the fallback path when neither override is set.
		Default string
		// Home is the user's home directory, used for ~ expansion and the
		// outside-home advisory.
		Home string
		// Roots overrides the protected-roots deny list. Nil selects the
		// platform defaults; tests use this to pin the list.
		Roots []string
	}
)

// Error implements the error interface.
func (e *NotAbsoluteError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotAbsolute.Error(), e.Path)
}

// Unwrap returns ErrNotAbsolute for errors.Is() compatibility.
func (e *NotAbsoluteError) Unwrap() error {
	return ErrNotAbsolute
}

// Error implements the error interface.
func (e *ProtectedPathError) Error() string {
	return fmt.Sprintf("%s: %q is under %q", ErrProtectedPath.Error(), e.Path, e.Root)
}

// Unwrap returns ErrProtectedPath for errors.Is() compatibility.
func (e *ProtectedPathError) Unwrap() error {
	return ErrProtectedPath
}

// Resolve picks the tools directory from the ordered inputs, expands a
// leading ~, absolutizes, and validates safety. A fatal error means the
// caller must not scan anything for this source; advisories accompany a
// successful resolution.
func Resolve(opts Options) (ResolvedPath, []Advisory, error) {
	raw, source := pick(opts)

	expanded := expandHome(raw, opts.Home)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return ResolvedPath{}, nil, fmt.Errorf("resolving absolute path for %q: %w", expanded, err)
	}
	abs = filepath.Clean(abs)

	if !filepath.IsAbs(abs) {
		return ResolvedPath{}, nil, &NotAbsoluteError{Path: abs}
	}

	roots := opts.Roots
	if roots == nil {
		roots = protectedRoots()
	}
	for _, root := range roots {
		if underProtectedRoot(abs, root) {
			return ResolvedPath{}, nil, &ProtectedPathError{Path: abs, Root: root}
		}
	}

	var advisories []Advisory
	if opts.Home != "" && !isWithin(abs, filepath.Clean(opts.Home)) {
		advisories = append(advisories, Advisory{
			Code:    AdvisoryOutsideHome,
			Message: fmt.Sprintf("tools directory %q is outside the home directory", abs),
			Path:    abs,
		})
	}

	_, statErr := os.Stat(abs)

	return ResolvedPath{
		Path:   abs,
		Source: source,
		Exists: statErr == nil,
	}, advisories, nil
}

// pick applies the precedence order: explicit override, environment, default.
func pick(opts Options) (string, ResolutionSource) {
	if strings.TrimSpace(opts.Explicit) != "" {
		return opts.Explicit, SourceExplicit
	}
	if strings.TrimSpace(opts.EnvValue) != "" {
		return opts.EnvValue, SourceEnvironment
	}
	return opts.Default, SourceDefault
}

// expandHome replaces a leading ~ or ~/ with the home directory.
func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(home, path[2:])
	}
	return path
}

// underProtectedRoot reports whether path equals or is nested under root.
// The filesystem root is matched by equality only, since every absolute
// path is nested under it.
func underProtectedRoot(path, root string) bool {
	root = filepath.Clean(root)
	if root == string(os.PathSeparator) || isDriveRoot(root) {
		return path == root
	}
	return isWithin(path, root)
}

// isWithin reports whether path equals dir or sits below it.
func isWithin(path, dir string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, dir+string(os.PathSeparator))
}

// isDriveRoot reports whether root is a Windows drive root such as C:\.
func isDriveRoot(root string) bool {
	return len(root) == 3 && root[1] == ':' && os.IsPathSeparator(root[2])
}
