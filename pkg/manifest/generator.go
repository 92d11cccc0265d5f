package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Render encodes the summary as YAML.
func Render(s *Summary) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("error marshalling summary: %w", err)
	}
	return out, nil
}
