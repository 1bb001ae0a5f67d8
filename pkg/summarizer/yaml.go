package summarizer

import (
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders a Summary as a YAML document.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

type yamlSummary struct {
	GeneratedAt string      `yaml:"generated_at"`
	Source      yamlSource  `yaml:"source"`
	Output      yamlOutput  `yaml:"output"`
	Frames      []yamlFrame `yaml:"frames"`
}

type yamlSource struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type yamlOutput struct {
	Path        string `yaml:"path"`
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	DelayCS     int    `yaml:"delay_cs"`
	DurationMs  int    `yaml:"duration_ms"`
	Loop        int    `yaml:"loop"`
	ColorKey    string `yaml:"transparent,omitempty"`
	FrameCount  int    `yaml:"frame_count"`
}

type yamlFrame struct {
	Index int `yaml:"index"`
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
}

// Format implements Formatter.
func (f *YAMLFormatter) Format(s *Summary) string {
	doc := yamlSummary{
		GeneratedAt: s.GeneratedAt.Format(time.RFC3339),
		Source: yamlSource{
			Path:   s.Source.Path,
			Width:  s.Source.Width,
			Height: s.Source.Height,
		},
		Output: yamlOutput{
			Path:        s.Output.Path,
			FrameWidth:  s.Output.FrameWidth,
			FrameHeight: s.Output.FrameHeight,
			Width:       s.Output.Width,
			Height:      s.Output.Height,
			DelayCS:     s.Output.DelayCS,
			DurationMs:  s.DurationMs(),
			Loop:        s.Output.LoopCount,
			ColorKey:    s.Output.ColorKey,
			FrameCount:  len(s.Frames),
		},
		Frames: make([]yamlFrame, len(s.Frames)),
	}
	for i, fr := range s.Frames {
		doc.Frames[i] = yamlFrame{Index: fr.Index, X: fr.X, Y: fr.Y}
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		// Only plain strings and ints are marshaled.
		return ""
	}
	return string(out)
}

var _ Formatter = (*YAMLFormatter)(nil)
