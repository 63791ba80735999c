package tui

import (
	"strings"
	"testing"
)

func TestLogPanelStartsHidden(t *testing.T) {
	p := NewLogPanel(60, 10)

	if p.State() != PanelHidden {
		t.Errorf("state = %v, want %v", p.State(), PanelHidden)
	}
	if p.Visible() {
		t.Error("panel visible before first submission")
	}
	if p.View() != "" {
		t.Error("hidden panel rendered content")
	}
}

func TestLogPanelResetMakesVisibleAndClears(t *testing.T) {
	p := NewLogPanel(60, 10)
	p.Reset()
	p.Append("old line\n")

	p.Reset()

	if p.State() != PanelEmpty {
		t.Errorf("state after reset = %v, want %v", p.State(), PanelEmpty)
	}
	if !p.Visible() {
		t.Error("panel not visible after reset")
	}
	if p.Content() != "" {
		t.Errorf("content after reset = %q, want empty", p.Content())
	}
}

func TestLogPanelAppendConcatenatesInOrder(t *testing.T) {
	p := NewLogPanel(60, 10)
	p.Reset()

	p.Append("Parsing row 1\n")
	p.Append("Parsing row 2\n")

	if p.State() != PanelStreaming {
		t.Errorf("state = %v, want %v", p.State(), PanelStreaming)
	}
	want := "Parsing row 1\nParsing row 2\n"
	if p.Content() != want {
		t.Errorf("content = %q, want %q", p.Content(), want)
	}

	p.Settle()
	if p.State() != PanelSettled {
		t.Errorf("state after settle = %v, want %v", p.State(), PanelSettled)
	}
	if p.Content() != want {
		t.Errorf("settle changed content to %q", p.Content())
	}
}

func TestLogPanelAppendPreservesSplitText(t *testing.T) {
	p := NewLogPanel(60, 10)
	p.Reset()

	// One logical line delivered as two chunks
	p.Append("Parsing ")
	p.Append("row 1\n")

	if p.Content() != "Parsing row 1\n" {
		t.Errorf("content = %q, want %q", p.Content(), "Parsing row 1\n")
	}
	lines := p.Lines()
	if len(lines) != 1 || lines[0] != "Parsing row 1" {
		t.Errorf("lines = %v, want single joined line", lines)
	}
}

func TestLogPanelSetErrorReplacesContent(t *testing.T) {
	p := NewLogPanel(60, 10)
	p.Reset()
	p.Append("should not survive\n")

	p.SetError("❌ Upload failed: Internal Server Error")

	if p.State() != PanelSettled {
		t.Errorf("state = %v, want %v", p.State(), PanelSettled)
	}
	want := "❌ Upload failed: Internal Server Error\n"
	if p.Content() != want {
		t.Errorf("content = %q, want %q", p.Content(), want)
	}
}

func TestLogPanelAppendAfterSetErrorStillDisplays(t *testing.T) {
	p := NewLogPanel(60, 10)
	p.Reset()
	p.SetError("❌ Upload failed: Internal Server Error")

	p.Append("late chunk\n")

	if !strings.Contains(p.Content(), "late chunk") {
		t.Errorf("late append lost: %q", p.Content())
	}
}

func TestLogPanelNeverReturnsToHidden(t *testing.T) {
	p := NewLogPanel(60, 10)
	p.Reset()
	p.Append("x")
	p.Settle()
	p.Reset()

	if p.State() == PanelHidden {
		t.Error("panel returned to hidden state")
	}
}

func TestLogPanelViewShowsTitleByState(t *testing.T) {
	p := NewLogPanel(60, 10)
	p.Reset()
	p.Append("line\n")

	if !strings.Contains(p.View(), "streaming") {
		t.Error("streaming panel view missing streaming marker")
	}

	p.Settle()
	if !strings.Contains(p.View(), "done") {
		t.Error("settled panel view missing done marker")
	}
}
