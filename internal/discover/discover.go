// Package discover finds the input frames of an animation in a directory.
package discover

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Unnumbered selects what happens to files without a digit run when
// sorting by numbers.
type Unnumbered int

const (
	// Exclude drops unnumbered files.
	Exclude Unnumbered = iota
	// Last places unnumbered files after the numbered ones in lexical order.
	Last
	// Fail makes FindImageFiles return an UnnumberedError.
	Fail
)

// ParseUnnumbered returns the policy named by s.
func ParseUnnumbered(s string) (Unnumbered, error) {
	switch s {
	case "exclude", "":
		return Exclude, nil
	case "last":
		return Last, nil
	case "error":
		return Fail, nil
	default:
		return 0, fmt.Errorf("unknown unnumbered policy: %s", s)
	}
}

type Options struct {
	SortByNumbers bool
	Unnumbered    Unnumbered
	Log           *slog.Logger
}

// NotFoundError is returned when a directory holds no usable files of an
// extension.
type NotFoundError struct {
	Dir string
	Ext string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s files found in the directory: %s", strings.ToUpper(e.Ext), e.Dir)
}

// UnnumberedError is returned under the Fail policy.
type UnnumberedError struct {
	Paths []string
}

func (e *UnnumberedError) Error() string {
	return fmt.Sprintf("%d files have no number in their name: %s", len(e.Paths), strings.Join(e.Paths, ", "))
}

// FindImageFiles returns the files directly in dir whose names end with
// "."+ext, matched case-sensitively. The result is never empty; when no
// file qualifies a *NotFoundError is returned.
func FindImageFiles(dir, ext string, opts Options) ([]string, error) {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	suffix := "." + ext
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	if opts.SortByNumbers {
		paths, err = sortByNumbers(paths, opts.Unnumbered, log)
		if err != nil {
			return nil, err
		}
	} else {
		sort.Strings(paths)
	}

	if len(paths) == 0 {
		return nil, &NotFoundError{Dir: dir, Ext: ext}
	}
	log.Info("found and sorted image files", "count", len(paths), "extension", strings.ToUpper(ext))
	return paths, nil
}

func sortByNumbers(paths []string, policy Unnumbered, log *slog.Logger) ([]string, error) {
	type numbered struct {
		key  int
		path string
	}
	var (
		withKey []numbered
		without []string
	)
	for _, p := range paths {
		if n, ok := NumberKey(filepath.Base(p)); ok {
			withKey = append(withKey, numbered{key: n, path: p})
		} else {
			without = append(without, p)
		}
	}
	sort.Slice(withKey, func(i, j int) bool {
		if withKey[i].key != withKey[j].key {
			return withKey[i].key < withKey[j].key
		}
		return withKey[i].path < withKey[j].path
	})
	sort.Strings(without)

	sorted := make([]string, 0, len(paths))
	for _, n := range withKey {
		sorted = append(sorted, n.path)
	}

	if len(without) == 0 {
		return sorted, nil
	}
	switch policy {
	case Last:
		sorted = append(sorted, without...)
	case Fail:
		return nil, &UnnumberedError{Paths: without}
	default:
		for _, p := range without {
			log.Warn("excluding file without number", "path", p)
		}
	}
	return sorted, nil
}

// NumberKey returns the value of the first run of ASCII digits in name.
// It reports false if name has no such digits or the run overflows an int.
func NumberKey(name string) (int, bool) {
	start := strings.IndexFunc(name, isDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(name) && isDigit(rune(name[end])) {
		end++
	}
	n, err := strconv.Atoi(name[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
