package decode

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

func yamlStrict(data []byte, v any) error {
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}
