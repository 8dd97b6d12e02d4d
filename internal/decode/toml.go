package decode

import (
	"bytes"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

func tomlStrict(data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode toml: %w", err)
	}
	return nil
}
