package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a profile from a YAML or JSON file
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a profile from YAML or JSON bytes. JSON documents are valid
// YAML, so one decoder serves both.
func Parse(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}
	return p, nil
}
