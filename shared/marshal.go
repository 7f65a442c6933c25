package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"gopkg.in/yaml.v3"
)

//UnmarshalWithExt converts data into destination choosing codec by document extension
func UnmarshalWithExt(data []byte, into interface{}, ext string) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, into); err != nil {
			return fmt.Errorf("failed to parse yaml due to the: %w", err)
		}
		return nil
	default:
		if err := json.Unmarshal(data, into); err != nil {
			return fmt.Errorf("failed to parse json due to the: %w", err)
		}
		return nil
	}
}
