package schema

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a schema from YAML. Unknown fields and trailing documents
// are rejected so a typo in a schema file cannot silently relax a check.
func Parse(data []byte) (*Schema, error) {
	var sch Schema
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sch); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if err := decoder.Decode(new(yaml.Node)); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse schema: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return &sch, nil
}

// Load reads, parses, and self-checks a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	sch, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(); err != nil {
		return nil, err
	}
	return sch, nil
}
