package config

import (
	"bufio"
	"bytes"
	"strings"
)

// FromINI parses line-oriented key=value configuration data. Sections name
// either the global options or a command path:
//
//	[globalOptions]
//	verbose = true
//
//	[commands remote add]
//	port = 9000
//
// Comment lines start with '#' or ';'. Values may be double-quoted.
// Lines that do not parse are skipped; keys outside a section are ignored.
func FromINI(data []byte) (*File, error) {
	f := &File{
		Commands: make(map[string]map[string]string),
		Global:   make(map[string]string),
	}

	section := ""
	scanner := bufio.NewScanner(bytes.NewReader(data))

	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimSuffix(scanner.Text(), "\r"))
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if unq, err := unquoteINI(value); err == nil {
			value = unq
		}
		if key == "" || section == "" {
			continue
		}

		fields := strings.Fields(section)
		switch {
		case strings.EqualFold(section, "globalOptions"):
			f.Global[strings.ToLower(key)] = value
		case len(fields) >= 2 && strings.EqualFold(fields[0], "commands"):
			path := normalizePath(strings.Join(fields[1:], " "))
			if f.Commands[path] == nil {
				f.Commands[path] = make(map[string]string)
			}
			f.Commands[path][strings.ToLower(key)] = value
		}
	}

	return f, scanner.Err()
}

func unquoteINI(v string) (string, error) {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1], nil
	}
	return v, nil
}
