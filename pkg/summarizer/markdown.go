package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct {
	translate func(string) string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t("Animation Summary"))
	fmt.Fprintf(&sb, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&sb, "## %s\n\n", t("Source"))
	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Path"), s.Source.Path)
	fmt.Fprintf(&sb, "| %s | %dx%d |\n\n", t("Size"), s.Source.Width, s.Source.Height)

	fmt.Fprintf(&sb, "## %s\n\n", t("Output"))
	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Path"), s.Output.Path)
	fmt.Fprintf(&sb, "| %s | %dx%d |\n", t("Frame Size"), s.Output.FrameWidth, s.Output.FrameHeight)
	fmt.Fprintf(&sb, "| %s | %dx%d |\n", t("Output Size"), s.Output.Width, s.Output.Height)
	fmt.Fprintf(&sb, "| %s | %d cs (%d ms) |\n", t("Delay"), s.Output.DelayCS, s.Output.DelayCS*10)
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Loop"), f.loopLabel(s.Output.LoopCount))
	colorKey := s.Output.ColorKey
	if colorKey == "" {
		colorKey = t("None")
	}
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Transparent Color"), colorKey)
	fmt.Fprintf(&sb, "| %s | %d |\n", t("Frames"), len(s.Frames))
	fmt.Fprintf(&sb, "| %s | %d ms |\n\n", t("Duration"), s.DurationMs())

	if len(s.Frames) > 0 {
		fmt.Fprintf(&sb, "## %s\n\n", t("Frames"))
		sb.WriteString("| # | X | Y |\n|---:|---:|---:|\n")
		for _, fr := range s.Frames {
			fmt.Fprintf(&sb, "| %d | %d | %d |\n", fr.Index, fr.X, fr.Y)
		}
	}

	return sb.String()
}

func (f *MarkdownFormatter) loopLabel(n int) string {
	switch {
	case n == 0:
		return f.translate("Forever")
	case n < 0:
		return f.translate("Once")
	default:
		return fmt.Sprintf("%d", n)
	}
}

var _ Formatter = (*MarkdownFormatter)(nil)
