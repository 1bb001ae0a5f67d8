package summarizer

import (
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/user/spritechop/pkg/mocks"
)

func testSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Source:      SourceInfo{Path: "sheet.png", Width: 320, Height: 114},
		Output: OutputInfo{
			Path:        "walk.gif",
			FrameWidth:  80,
			FrameHeight: 114,
			Width:       160,
			Height:      228,
			DelayCS:     8,
			ColorKey:    "#ff00ff",
		},
		Frames: []FrameInfo{
			{Index: 1, X: 0, Y: 0},
			{Index: 2, X: 80, Y: 0},
			{Index: 3, X: 160, Y: 0},
		},
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	result := NewMarkdownFormatter().Format(testSummary())

	checks := []string{
		"# Animation Summary",
		"sheet.png",
		"320x114",
		"walk.gif",
		"80x114",
		"160x228",
		"8 cs (80 ms)",
		"Forever",
		"#ff00ff",
		"240 ms",
		"| 2 | 80 | 0 |",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_LoopAndColorKey(t *testing.T) {
	s := testSummary()
	s.Output.LoopCount = -1
	s.Output.ColorKey = ""

	result := NewMarkdownFormatter().Format(s)

	if !strings.Contains(result, "| Loop | Once |") {
		t.Error("expected loop to be reported as 'Once'")
	}
	if !strings.Contains(result, "| Transparent Color | None |") {
		t.Error("expected missing colorkey to be reported as 'None'")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Animation Summary": "アニメーションサマリー",
			"Source":            "ソース",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	result := NewMarkdownFormatter(WithTranslator(translator)).Format(testSummary())

	if !strings.Contains(result, "# アニメーションサマリー") {
		t.Error("expected translated title")
	}
	if !strings.Contains(result, "## ソース") {
		t.Error("expected translated section")
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	out := NewYAMLFormatter().Format(testSummary())

	var doc struct {
		GeneratedAt string `yaml:"generated_at"`
		Output      struct {
			Path        string `yaml:"path"`
			DelayCS     int    `yaml:"delay_cs"`
			DurationMs  int    `yaml:"duration_ms"`
			Transparent string `yaml:"transparent"`
			FrameCount  int    `yaml:"frame_count"`
		} `yaml:"output"`
		Frames []struct {
			Index int `yaml:"index"`
			X     int `yaml:"x"`
			Y     int `yaml:"y"`
		} `yaml:"frames"`
	}
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}

	if doc.GeneratedAt != "2024-01-15T10:30:00Z" {
		t.Errorf("unexpected generated_at: %s", doc.GeneratedAt)
	}
	if doc.Output.Path != "walk.gif" || doc.Output.DelayCS != 8 || doc.Output.DurationMs != 240 {
		t.Errorf("unexpected output section: %+v", doc.Output)
	}
	if doc.Output.Transparent != "#ff00ff" {
		t.Errorf("unexpected transparent: %s", doc.Output.Transparent)
	}
	if doc.Output.FrameCount != 3 || len(doc.Frames) != 3 {
		t.Fatalf("expected 3 frames, got %d / %d", doc.Output.FrameCount, len(doc.Frames))
	}
	if doc.Frames[2].Index != 3 || doc.Frames[2].X != 160 {
		t.Errorf("unexpected last frame: %+v", doc.Frames[2])
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path     string
		markdown bool
	}{
		{"summary.md", true},
		{"SUMMARY.MD", true},
		{"out/summary.markdown", true},
		{"summary.yaml", false},
		{"summary.yml", false},
		{"summary", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, isMarkdown := ForPath(tt.path).(*MarkdownFormatter)
			if isMarkdown != tt.markdown {
				t.Errorf("ForPath(%q) markdown = %v, want %v", tt.path, isMarkdown, tt.markdown)
			}
		})
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(fs, FormatFunc(func(s *Summary) string { return "frames: 3\n" }))

	if err := w.Write("reports/walk.yaml", testSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exists, _ := fs.Exists("reports"); !exists {
		t.Error("expected parent directory to be created")
	}
	data, ok := fs.GetFile("reports/walk.yaml")
	if !ok {
		t.Fatal("expected summary file to be written")
	}
	if string(data) != "frames: 3\n" {
		t.Errorf("unexpected content: %q", data)
	}
}
