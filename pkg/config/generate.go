package config

import (
	"bytes"

	"github.com/arthur-debert/sketchlink/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# sketchlink configuration
# Place this file at the project root as .sketchlink.toml

`

// Generate renders cfg as a TOML document suitable for .sketchlink.toml
func Generate(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}
