// Package registry persists the set of session identifiers cs has created.
//
// The backing record is a plain text file with one identifier per line. The
// registry is advisory: reads, appends and removals degrade to empty results
// or no-ops on I/O errors (they are logged, not returned). Only Clear, which
// is destructive and user-initiated, reports failure.
//
// Nothing is locked. Two invocations racing on the same file can lose an
// update; the worst outcome is one extra "new" session, which --reset or
// --force already cover.
package registry

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bikramtuladhar/claude-code-resumer/logger"
)

// Set is the logical content of the registry.
type Set map[string]struct{}

// Contains reports whether id is in the set.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the identifiers in lexical order.
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ClearResult describes what Clear did.
type ClearResult int

const (
	// Cleared means the backing file existed and was deleted.
	Cleared ClearResult = iota
	// AlreadyEmpty means there was no backing file to delete.
	AlreadyEmpty
)

// Registry is a file-backed identifier set.
type Registry struct {
	path string
}

// New returns a registry stored at path.
func New(path string) *Registry {
	return &Registry{path: path}
}

// Path returns the backing file location.
func (r *Registry) Path() string {
	return r.path
}

// Load reads the registry. A missing or unreadable file yields an empty set.
func (r *Registry) Load() Set {
	set := make(Set)
	lines, err := r.readLines()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.WithComponent("registry").Warn("failed to read registry", "path", r.path, "error", err)
		}
		return set
	}
	for _, line := range lines {
		set[line] = struct{}{}
	}
	return set
}

// Contains reports whether id is recorded.
func (r *Registry) Contains(id string) bool {
	return r.Load().Contains(id)
}

// Save records id, creating the file and its parent directories as needed.
// Saving an id that is already present leaves the file untouched.
func (r *Registry) Save(id string) {
	log := logger.WithComponent("registry")

	if r.Contains(id) {
		log.Debug("id already recorded", "id", id)
		return
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		log.Warn("failed to create registry directory", "path", r.path, "error", err)
		return
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		log.Warn("failed to open registry", "path", r.path, "error", err)
		return
	}
	defer f.Close()

	entry := id + "\n"
	if needsNewline(f) {
		entry = "\n" + entry
	}
	if _, err := f.WriteString(entry); err != nil {
		log.Warn("failed to append to registry", "path", r.path, "error", err)
		return
	}
	log.Debug("recorded id", "id", id)
}

// needsNewline reports whether f is non-empty and its last line is
// unterminated, as left by a hand edit or an interrupted write.
func needsNewline(f *os.File) bool {
	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return false
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false
	}
	return last[0] != '\n'
}

// Remove deletes every occurrence of id. The remaining entries are rewritten
// once each, newline-terminated. A missing file or absent id is a no-op.
func (r *Registry) Remove(id string) {
	log := logger.WithComponent("registry")

	lines, err := r.readLines()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("failed to read registry", "path", r.path, "error", err)
		}
		return
	}

	var buf bytes.Buffer
	seen := make(Set, len(lines))
	removed := 0
	for _, line := range lines {
		if line == id {
			removed++
			continue
		}
		if seen.Contains(line) {
			continue
		}
		seen[line] = struct{}{}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if removed == 0 && len(seen) == len(lines) {
		return
	}

	if err := writeFileAtomic(r.path, buf.Bytes()); err != nil {
		log.Warn("failed to rewrite registry", "path", r.path, "error", err)
		return
	}
	log.Debug("removed id", "id", id, "occurrences", removed)
}

// Clear deletes the backing file.
func (r *Registry) Clear() (ClearResult, error) {
	err := os.Remove(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return AlreadyEmpty, nil
	}
	if err != nil {
		return Cleared, fmt.Errorf("clear session registry %s: %w", r.path, err)
	}
	return Cleared, nil
}

// readLines returns the trimmed, non-blank lines of the backing file.
func (r *Registry) readLines() ([]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// writeFileAtomic replaces path with data via a temp file and rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp registry file: %w", err)
	}
	name := tmpFile.Name()

	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err == nil {
		err = os.Chmod(name, 0644)
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp registry file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename registry file: %w", err)
	}
	return nil
}
