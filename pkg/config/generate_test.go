package config

import (
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	cfg := Default()
	cfg.Link.Relative = true

	out, err := Generate(cfg)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# sketchlink configuration")
	assert.Contains(t, text, "[scan]")
	assert.Contains(t, text, "[link]")

	var back Config
	require.NoError(t, toml.Unmarshal(out, &back))
	assert.Equal(t, *cfg, back)
}
