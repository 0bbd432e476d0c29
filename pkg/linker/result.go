package linker

// Status is the outcome of one resource check inside a sketch directory
type Status string

const (
	// StatusExists means an entry was already present and was left alone
	StatusExists Status = "exists"
	// StatusBroken means a dangling symlink was found and kept
	StatusBroken Status = "broken"
	// StatusCreated means a new symlink was created
	StatusCreated Status = "created"
	// StatusReplaced means a dangling symlink was replaced
	StatusReplaced Status = "replaced"
	// StatusWouldCreate is StatusCreated in a dry run
	StatusWouldCreate Status = "would-create"
	// StatusWouldReplace is StatusReplaced in a dry run
	StatusWouldReplace Status = "would-replace"
)

// LinkResult describes the decision for one resource in one sketch
type LinkResult struct {
	Resource string `json:"resource" yaml:"resource"`
	// Path is the link location inside the sketch directory
	Path string `json:"path" yaml:"path"`
	// Target is what the link points to (or would point to)
	Target string `json:"target" yaml:"target"`
	Status Status `json:"status" yaml:"status"`
}

// SketchResult groups the link decisions made for one marker file
type SketchResult struct {
	// Marker is relative to the root
	Marker string       `json:"marker" yaml:"marker"`
	Dir    string       `json:"dir" yaml:"dir"`
	Links  []LinkResult `json:"links" yaml:"links"`
}

// Result is the outcome of a run. On error it holds everything decided up
// to the failure.
type Result struct {
	Root     string         `json:"root" yaml:"root"`
	DryRun   bool           `json:"dryRun" yaml:"dryRun"`
	Sketches []SketchResult `json:"sketches" yaml:"sketches"`
	Summary  Summary        `json:"summary" yaml:"summary"`
}

// Summary counts outcomes across all sketches
type Summary struct {
	Markers  int `json:"markers" yaml:"markers"`
	Created  int `json:"created" yaml:"created"`
	Replaced int `json:"replaced" yaml:"replaced"`
	Existing int `json:"existing" yaml:"existing"`
	Broken   int `json:"broken" yaml:"broken"`
}

func (r *Result) tally() {
	s := Summary{Markers: len(r.Sketches)}
	for _, sketch := range r.Sketches {
		for _, link := range sketch.Links {
			switch link.Status {
			case StatusCreated, StatusWouldCreate:
				s.Created++
			case StatusReplaced, StatusWouldReplace:
				s.Replaced++
			case StatusExists:
				s.Existing++
			case StatusBroken:
				s.Broken++
			}
		}
	}
	r.Summary = s
}
