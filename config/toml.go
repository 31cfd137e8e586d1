package config

import "github.com/BurntSushi/toml"

// FromTOML parses TOML configuration data into the shape the merger
// consumes. Nested command tables become path-qualified sections:
//
//	[commands.remote.add]
//	port = "9000"
//
//	[globalOptions]
//	verbose = true
func FromTOML(data []byte) (*File, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return fromTree(root), nil
}
