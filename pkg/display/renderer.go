package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/sketchlink/pkg/linker"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Renderer reports a link run. Progress arrives through the
// linker.Reporter methods; Finish is called once with the final result.
type Renderer interface {
	linker.Reporter
	Finish(result *linker.Result) error
}

// NewRenderer creates the renderer for a concrete format.
// FormatAuto must be resolved first, see Resolve.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	switch format {
	case FormatText:
		return &lineRenderer{w: w, styles: plainStyles()}, nil
	case FormatTerminal:
		return &lineRenderer{w: w, styles: terminalStyles(lipgloss.NewRenderer(w))}, nil
	case FormatJSON:
		return &documentRenderer{w: w, encode: encodeJSON}, nil
	case FormatYAML:
		return &documentRenderer{w: w, encode: encodeYAML}, nil
	default:
		return nil, fmt.Errorf("no renderer for format %s", format)
	}
}

// lineRenderer prints one line per decision as it happens
type lineRenderer struct {
	w      io.Writer
	styles styleSet
}

func (r *lineRenderer) MarkerFound(sketch linker.SketchResult) {
	fmt.Fprintln(r.w, r.styles.marker(fmt.Sprintf(MsgMarkerFound, sketch.Marker)))
}

func (r *lineRenderer) LinkDecided(_ linker.SketchResult, link linker.LinkResult) {
	format, style := MsgExists, r.styles.existing
	switch link.Status {
	case linker.StatusBroken:
		format, style = MsgBroken, r.styles.warning
	case linker.StatusCreated:
		format, style = MsgCreated, r.styles.created
	case linker.StatusReplaced:
		format, style = MsgReplaced, r.styles.created
	case linker.StatusWouldCreate:
		format, style = MsgWouldCreate, r.styles.planned
	case linker.StatusWouldReplace:
		format, style = MsgWouldReplace, r.styles.planned
	}
	fmt.Fprintln(r.w, style(fmt.Sprintf(format, link.Resource)))
}

func (r *lineRenderer) Finish(result *linker.Result) error {
	if len(result.Sketches) == 0 {
		fmt.Fprintln(r.w, r.styles.muted(fmt.Sprintf(MsgNoMarkers, result.Root)))
	}
	if result.DryRun {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.styles.warning(MsgDryRunNotice))
	}
	return nil
}

// documentRenderer emits the whole result once the run is over
type documentRenderer struct {
	w      io.Writer
	encode func(io.Writer, *linker.Result) error
}

func (r *documentRenderer) MarkerFound(linker.SketchResult)                    {}
func (r *documentRenderer) LinkDecided(linker.SketchResult, linker.LinkResult) {}

func (r *documentRenderer) Finish(result *linker.Result) error {
	return r.encode(r.w, result)
}

func encodeJSON(w io.Writer, result *linker.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func encodeYAML(w io.Writer, result *linker.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}
