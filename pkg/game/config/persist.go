// Package config persists archive-flagged cvars to the settings file
// and restores them on startup.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"voidrunner/pkg/engine/cvar"
)

// DefaultPath is the settings file written next to the executable.
const DefaultPath = "vars.rc"

// WriteTo serializes every archive-flagged variable as a console line,
// sorted by name. Defaults are never persisted.
func WriteTo(w io.Writer, reg *cvar.Registry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "// generated settings file, edit with care")

	for _, v := range reg.List() {
		if !v.Archive {
			continue
		}
		fmt.Fprintf(bw, "set %s %q\n", v.Name, v.Value)
	}
	return bw.Flush()
}

// Write persists the archive set to path, replacing the previous file.
func Write(path string, reg *cvar.Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTo(f, reg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a settings file and applies each line via Set. A missing
// file is not an error (first run). Unknown variables and malformed
// lines are collected and returned joined, never fatal: registration
// happens before loading, so a stale name is a report, not a crash.
func Load(path string, reg *cvar.Registry) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	var errs []error
	sc := bufio.NewScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		name, value, ok := parseLine(sc.Text())
		if !ok {
			continue
		}
		if name == "" {
			errs = append(errs, fmt.Errorf("%s:%d: malformed line", path, lineno))
			continue
		}
		if err := reg.Set(name, value); err != nil {
			errs = append(errs, fmt.Errorf("%s:%d: %w", path, lineno, err))
		}
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// parseLine splits one settings line into name and value. Accepts both
// `set name "value"` and bare `name "value"` forms; quotes around the
// value are optional. Returns ok=false for blank lines and comments and
// name=="" for lines that cannot be split.
func parseLine(line string) (name, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	rest := line
	if after, found := strings.CutPrefix(rest, "set "); found {
		rest = strings.TrimSpace(after)
	}

	fields := strings.SplitN(rest, " ", 2)
	if len(fields) != 2 {
		return "", "", true
	}

	name = fields[0]
	value = strings.TrimSpace(fields[1])
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return name, value, true
}
