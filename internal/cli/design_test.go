package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtkb13/framegen/pkg/topology"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	panic("unknown key: " + s)
}

func press(t *testing.T, m designModel, keys ...string) designModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(designModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestDefaultParamsAreGeneratable(t *testing.T) {
	for _, kind := range designKinds {
		if _, err := topology.Generate(defaultParams(kind)); err != nil {
			t.Errorf("%s defaults should generate: %v", kind, err)
		}
	}
}

func TestFieldsForCoverEveryKind(t *testing.T) {
	for _, kind := range designKinds {
		if len(fieldsFor(kind)) == 0 {
			t.Errorf("%s has no adjustable fields", kind)
		}
	}
}

func TestAdjustStepsField(t *testing.T) {
	m := newDesignModel(defaultParams(topology.KindWarren))

	m = press(t, m, "right")
	if m.params.Span != 25 {
		t.Errorf("span = %v after one increment, want 25", m.params.Span)
	}

	m = press(t, m, "left", "left")
	if m.params.Span != 23 {
		t.Errorf("span = %v after two decrements, want 23", m.params.Span)
	}
}

func TestAdjustClampsAtZero(t *testing.T) {
	m := newDesignModel(topology.Params{Kind: topology.KindWarren, Span: 1, Height: 3, Panels: 6})

	m = press(t, m, "left", "left", "left")
	if m.params.Span != 0 {
		t.Errorf("span = %v, want clamp at 0", m.params.Span)
	}
}

func TestAdjustTogglesBool(t *testing.T) {
	m := newDesignModel(defaultParams(topology.KindWarehouse))

	// Move the cursor to the purlins toggle.
	for i, f := range m.fields {
		if f.name == "purlins" {
			m.cursor = i
		}
	}

	m = press(t, m, "right")
	if !m.params.Purlins {
		t.Error("purlins should toggle on")
	}
	m = press(t, m, "right")
	if m.params.Purlins {
		t.Error("purlins should toggle off")
	}
}

func TestTabCyclesKinds(t *testing.T) {
	m := newDesignModel(defaultParams(topology.KindWarren))

	m = press(t, m, "tab")
	if m.params.Kind != topology.KindPratt {
		t.Errorf("kind = %s after tab, want pratt", m.params.Kind)
	}

	for range designKinds[1:] {
		m = press(t, m, "tab")
	}
	if m.params.Kind != topology.KindWarren {
		t.Errorf("kind = %s after a full cycle, want warren", m.params.Kind)
	}
}

func TestSwitchKindResetsCursor(t *testing.T) {
	m := newDesignModel(defaultParams(topology.KindWarren))
	m = press(t, m, "down", "down", "tab")

	if m.cursor != 0 {
		t.Errorf("cursor = %d after kind switch, want 0", m.cursor)
	}
}

func TestEnterMarksSaved(t *testing.T) {
	m := newDesignModel(defaultParams(topology.KindPortal))

	next, cmd := m.Update(keyMsg("enter"))
	dm := next.(designModel)
	if !dm.saved {
		t.Error("enter should mark the session saved")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestViewShowsCountsAndPreview(t *testing.T) {
	m := newDesignModel(defaultParams(topology.KindPortal))
	view := m.View()

	if !strings.Contains(view, "Design: portal") {
		t.Errorf("view missing title:\n%s", view)
	}
	if !strings.Contains(view, "4 joints") || !strings.Contains(view, "3 members") {
		t.Errorf("view missing counts:\n%s", view)
	}
	if !strings.Contains(view, "✓") {
		t.Errorf("view missing valid-parameters marker:\n%s", view)
	}
	if !strings.Contains(view, "span") || !strings.Contains(view, "height") {
		t.Errorf("view missing parameter rows:\n%s", view)
	}
}

func TestViewShowsValidationError(t *testing.T) {
	m := newDesignModel(topology.Params{Kind: topology.KindPortal, Span: 0, Height: 4})
	view := m.View()

	if strings.Contains(view, "joints") {
		t.Errorf("invalid params should not show counts:\n%s", view)
	}
}

func TestFormatValue(t *testing.T) {
	m := newDesignModel(defaultParams(topology.KindGrid))

	byName := map[string]string{}
	for _, f := range m.fields {
		byName[f.name] = m.formatValue(f)
	}

	if byName["bays x"] != "3" {
		t.Errorf("bays x = %q, want 3", byName["bays x"])
	}
	if byName["story height"] != "3.2" {
		t.Errorf("story height = %q, want 3.2", byName["story height"])
	}
}
