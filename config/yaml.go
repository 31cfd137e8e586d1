package config

import "gopkg.in/yaml.v3"

// FromYAML parses YAML configuration data into the shape the merger
// consumes:
//
//	commands:
//	  remote:
//	    add:
//	      port: "9000"
//	globalOptions:
//	  verbose: true
func FromYAML(data []byte) (*File, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return fromTree(root), nil
}
