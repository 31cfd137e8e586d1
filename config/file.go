// Package config merges configuration-file values, environment variables
// and command-line tokens into one precedence-ordered value source per
// parameter, and adapts the common file formats to the one parsed shape
// the merger consumes.
package config

import (
	"fmt"
	"strings"
)

// File is an already-parsed configuration source: a commands section keyed
// by command path, and a globalOptions section for cross-cutting options.
// Keys are matched case-insensitively. The zero value is an empty source.
type File struct {
	Commands map[string]map[string]string
	Global   map[string]string
}

// CommandValue looks up a parameter value under the command's
// path-qualified section.
func (f *File) CommandValue(path []string, param string) (string, bool) {
	if f == nil || f.Commands == nil {
		return "", false
	}
	section, ok := f.Commands[normalizePath(strings.Join(path, " "))]
	if !ok {
		return "", false
	}
	v, ok := section[strings.ToLower(param)]
	return v, ok
}

// GlobalValue looks up a parameter value in the globalOptions section.
func (f *File) GlobalValue(param string) (string, bool) {
	if f == nil || f.Global == nil {
		return "", false
	}
	v, ok := f.Global[strings.ToLower(param)]
	return v, ok
}

func normalizePath(path string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(path, ".", " ")), " "))
}

// fromTree builds a File from a decoded generic mapping, the shape every
// format adapter produces. Anything malformed is skipped for that key
// only; a malformed configuration source is never fatal.
func fromTree(root map[string]any) *File {
	f := &File{
		Commands: make(map[string]map[string]string),
		Global:   make(map[string]string),
	}

	for key, value := range root {
		switch {
		case strings.EqualFold(key, "commands"):
			if sub, ok := asMap(value); ok {
				flattenCommands(f, "", sub)
			}
		case strings.EqualFold(key, "globalOptions"):
			if sub, ok := asMap(value); ok {
				for k, v := range sub {
					if s, ok := asScalar(v); ok {
						f.Global[strings.ToLower(k)] = s
					}
				}
			}
		}
	}

	return f
}

// flattenCommands walks nested command sections, joining nesting levels
// into space-separated path keys. A section may hold scalar parameter
// values and nested subcommand sections side by side.
func flattenCommands(f *File, prefix string, section map[string]any) {
	for key, value := range section {
		if sub, ok := asMap(value); ok {
			path := key
			if prefix != "" {
				path = prefix + " " + key
			}
			flattenCommands(f, path, sub)
			continue
		}

		if prefix == "" {
			continue // parameter value outside any command section
		}
		s, ok := asScalar(value)
		if !ok {
			continue
		}
		path := normalizePath(prefix)
		if f.Commands[path] == nil {
			f.Commands[path] = make(map[string]string)
		}
		f.Commands[path][strings.ToLower(key)] = s
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

func asScalar(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return fmt.Sprintf("%t", s), true
	case int, int64, uint, uint64:
		return fmt.Sprintf("%d", s), true
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s)), true
		}
		return fmt.Sprintf("%g", s), true
	}
	return "", false
}
