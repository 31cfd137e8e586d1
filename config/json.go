package config

import "encoding/json"

// FromJSON parses JSON configuration data into the shape the merger
// consumes:
//
//	{"commands": {"remote": {"add": {"port": "9000"}}},
//	 "globalOptions": {"verbose": "true"}}
func FromJSON(data []byte) (*File, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return fromTree(root), nil
}
