package display

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/sketchlink/pkg/linker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRun() (linker.SketchResult, []linker.LinkResult, *linker.Result) {
	sketch := linker.SketchResult{Marker: "sketchA/sketchA.pde", Dir: "sketchA"}
	links := []linker.LinkResult{
		{Resource: "code", Path: "sketchA/code", Target: "/root/code", Status: linker.StatusExists},
		{Resource: "Pantograph.java", Path: "sketchA/Pantograph.java", Target: "/root/Pantograph.java", Status: linker.StatusCreated},
	}
	sketch.Links = links
	result := &linker.Result{
		Root:     "/root",
		Sketches: []linker.SketchResult{sketch},
		Summary:  linker.Summary{Markers: 1, Created: 1, Existing: 1},
	}
	return sketch, links, result
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatText, &buf)
	require.NoError(t, err)

	sketch, links, result := sampleRun()
	r.MarkerFound(sketch)
	for _, l := range links {
		r.LinkDecided(sketch, l)
	}
	require.NoError(t, r.Finish(result))

	assert.Equal(t, "Found marker file: sketchA/sketchA.pde\n"+
		"  `code` exists\n"+
		"  Symlink to `Pantograph.java`\n", buf.String())
}

func TestTextRenderer_Statuses(t *testing.T) {
	tests := []struct {
		status linker.Status
		want   string
	}{
		{linker.StatusExists, "  `code` exists\n"},
		{linker.StatusBroken, "  `code` is a broken symlink, left in place\n"},
		{linker.StatusCreated, "  Symlink to `code`\n"},
		{linker.StatusReplaced, "  Replaced broken symlink `code`\n"},
		{linker.StatusWouldCreate, "  Would symlink `code`\n"},
		{linker.StatusWouldReplace, "  Would replace broken symlink `code`\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			r, err := NewRenderer(FormatText, &buf)
			require.NoError(t, err)

			r.LinkDecided(linker.SketchResult{}, linker.LinkResult{Resource: "code", Status: tt.status})
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTextRenderer_FinishNotices(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.Finish(&linker.Result{Root: "/proj", DryRun: true}))

	out := buf.String()
	assert.Contains(t, out, "No marker files found under /proj")
	assert.Contains(t, out, MsgDryRunNotice)
}

func TestTerminalRenderer_KeepsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatTerminal, &buf)
	require.NoError(t, err)

	sketch, links, _ := sampleRun()
	r.MarkerFound(sketch)
	r.LinkDecided(sketch, links[1])

	assert.Contains(t, buf.String(), "Found marker file: sketchA/sketchA.pde")
	assert.Contains(t, buf.String(), "Symlink to `Pantograph.java`")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)

	sketch, links, result := sampleRun()
	r.MarkerFound(sketch)
	r.LinkDecided(sketch, links[0])
	assert.Empty(t, buf.String(), "structured output waits for Finish")

	require.NoError(t, r.Finish(result))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/root", decoded["root"])
	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["created"])

	sketches := decoded["sketches"].([]interface{})
	first := sketches[0].(map[string]interface{})
	linksOut := first["links"].([]interface{})
	assert.Equal(t, "created", linksOut[1].(map[string]interface{})["status"])
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatYAML, &buf)
	require.NoError(t, err)

	_, _, result := sampleRun()
	require.NoError(t, r.Finish(result))

	var decoded struct {
		Root     string `yaml:"root"`
		Sketches []struct {
			Marker string `yaml:"marker"`
			Links  []struct {
				Status string `yaml:"status"`
			} `yaml:"links"`
		} `yaml:"sketches"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/root", decoded.Root)
	require.Len(t, decoded.Sketches, 1)
	assert.Equal(t, "sketchA/sketchA.pde", decoded.Sketches[0].Marker)
	assert.Equal(t, "exists", decoded.Sketches[0].Links[0].Status)
}

func TestNewRenderer_Auto(t *testing.T) {
	_, err := NewRenderer(FormatAuto, &bytes.Buffer{})
	assert.Error(t, err)
}
