package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	modelio "github.com/mtkb13/framegen/pkg/io"
	"github.com/mtkb13/framegen/pkg/render/elevation"
	"github.com/mtkb13/framegen/pkg/topology"
)

// previewSize bounds the terminal elevation inside the designer.
const (
	previewWidth  = 64
	previewHeight = 14
)

// designKinds is the kind cycle order for tab switching.
var designKinds = []topology.Kind{
	topology.KindWarren, topology.KindPratt, topology.KindHowe, topology.KindBowstring,
	topology.KindPortal, topology.KindWarehouse, topology.KindGrid, topology.KindPlate,
}

// newDesignCmd creates the design command, an interactive parameter
// explorer with a live elevation preview.
func newDesignCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "design [kind]",
		Short:     "Design a topology interactively",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := topology.KindWarren
			if len(args) == 1 {
				kind = topology.Kind(args[0])
			}
			return runDesign(kind, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file on save (default: <kind>.json)")
	return cmd
}

func kindNames() []string {
	names := make([]string, len(designKinds))
	for i, k := range designKinds {
		names[i] = string(k)
	}
	return names
}

// runDesign runs the designer and writes the model when the session
// ended with a save.
func runDesign(kind topology.Kind, output string) error {
	if err := validKind(kind); err != nil {
		return err
	}

	final, err := tea.NewProgram(newDesignModel(defaultParams(kind))).Run()
	if err != nil {
		return err
	}

	dm, ok := final.(designModel)
	if !ok || !dm.saved {
		return nil
	}

	m, err := topology.Generate(dm.params)
	if err != nil {
		return err
	}
	if output == "" {
		output = fmt.Sprintf("%s.json", dm.params.Kind)
	}
	if err := modelio.ExportJSON(m, output); err != nil {
		return err
	}

	printSuccess("Saved %s model", m.Kind)
	printStats(len(m.Joints), len(m.Members), len(m.Plates), false)
	printFile(output)
	return nil
}

func validKind(kind topology.Kind) error {
	for _, k := range designKinds {
		if k == kind {
			return nil
		}
	}
	return fmt.Errorf("unknown kind: %s", kind)
}

// defaultParams returns the starting parameter set for a kind, matching
// the generate subcommand defaults.
func defaultParams(kind topology.Kind) topology.Params {
	switch kind {
	case topology.KindPortal:
		return topology.Params{Kind: kind, Span: 6, Height: 4}
	case topology.KindWarehouse:
		return topology.Params{Kind: kind, Bays: 4, BaySpacing: 25, Width: 60, EaveHeight: 20, RidgeHeight: 28}
	case topology.KindGrid:
		return topology.Params{Kind: kind, BaysX: 3, BaysZ: 2, Stories: 4, BayWidth: 6, BayDepth: 5, StoryHeight: 3.2}
	case topology.KindPlate:
		return topology.Params{Kind: kind, WallHeight: 4, WallWidth: 6, SlabLength: 8, SlabWidth: 3}
	default:
		return topology.Params{Kind: kind, Span: 24, Height: 3, Panels: 6}
	}
}

// designField is one adjustable parameter. Integer and boolean fields
// share the float accessors; bools toggle between 0 and 1.
type designField struct {
	name    string
	step    float64
	integer bool
	boolean bool
	get     func(p *topology.Params) float64
	set     func(p *topology.Params, v float64)
}

// fieldsFor returns the adjustable fields for a kind.
func fieldsFor(kind topology.Kind) []designField {
	switch kind {
	case topology.KindPortal:
		return []designField{
			floatField("span", 0.5, func(p *topology.Params) *float64 { return &p.Span }),
			floatField("height", 0.5, func(p *topology.Params) *float64 { return &p.Height }),
		}
	case topology.KindWarehouse:
		return []designField{
			intField("bays", func(p *topology.Params) *int { return &p.Bays }),
			floatField("bay spacing", 1, func(p *topology.Params) *float64 { return &p.BaySpacing }),
			floatField("width", 2, func(p *topology.Params) *float64 { return &p.Width }),
			floatField("eave height", 1, func(p *topology.Params) *float64 { return &p.EaveHeight }),
			floatField("ridge height", 1, func(p *topology.Params) *float64 { return &p.RidgeHeight }),
			boolField("purlins", func(p *topology.Params) *bool { return &p.Purlins }),
			floatField("purlin spacing", 0.5, func(p *topology.Params) *float64 { return &p.PurlinSpacing }),
			boolField("bracing", func(p *topology.Params) *bool { return &p.Bracing }),
		}
	case topology.KindGrid:
		return []designField{
			intField("bays x", func(p *topology.Params) *int { return &p.BaysX }),
			intField("bays z", func(p *topology.Params) *int { return &p.BaysZ }),
			intField("stories", func(p *topology.Params) *int { return &p.Stories }),
			floatField("bay width", 0.5, func(p *topology.Params) *float64 { return &p.BayWidth }),
			floatField("bay depth", 0.5, func(p *topology.Params) *float64 { return &p.BayDepth }),
			floatField("story height", 0.2, func(p *topology.Params) *float64 { return &p.StoryHeight }),
		}
	case topology.KindPlate:
		return []designField{
			floatField("wall height", 0.5, func(p *topology.Params) *float64 { return &p.WallHeight }),
			floatField("wall width", 0.5, func(p *topology.Params) *float64 { return &p.WallWidth }),
			floatField("slab length", 0.5, func(p *topology.Params) *float64 { return &p.SlabLength }),
			floatField("slab width", 0.5, func(p *topology.Params) *float64 { return &p.SlabWidth }),
		}
	default: // truss kinds
		return []designField{
			floatField("span", 1, func(p *topology.Params) *float64 { return &p.Span }),
			floatField("height", 0.5, func(p *topology.Params) *float64 { return &p.Height }),
			intField("panels", func(p *topology.Params) *int { return &p.Panels }),
		}
	}
}

func floatField(name string, step float64, addr func(p *topology.Params) *float64) designField {
	return designField{
		name: name,
		step: step,
		get:  func(p *topology.Params) float64 { return *addr(p) },
		set:  func(p *topology.Params, v float64) { *addr(p) = v },
	}
}

func intField(name string, addr func(p *topology.Params) *int) designField {
	return designField{
		name:    name,
		step:    1,
		integer: true,
		get:     func(p *topology.Params) float64 { return float64(*addr(p)) },
		set:     func(p *topology.Params, v float64) { *addr(p) = int(v) },
	}
}

func boolField(name string, addr func(p *topology.Params) *bool) designField {
	return designField{
		name:    name,
		boolean: true,
		get: func(p *topology.Params) float64 {
			if *addr(p) {
				return 1
			}
			return 0
		},
		set: func(p *topology.Params, v float64) { *addr(p) = v != 0 },
	}
}

// designModel is the bubbletea model for the interactive designer.
type designModel struct {
	params topology.Params
	fields []designField
	cursor int
	saved  bool
}

func newDesignModel(p topology.Params) designModel {
	return designModel{params: p, fields: fieldsFor(p.Kind)}
}

func (m designModel) Init() tea.Cmd {
	return nil
}

func (m designModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "right", "l", "+", "=":
			m.adjust(1)
		case "left", "h", "-":
			m.adjust(-1)
		case "tab":
			m = m.switchKind(1)
		case "shift+tab":
			m = m.switchKind(-1)
		case "enter", "s":
			m.saved = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// adjust steps the field under the cursor by dir. Booleans toggle,
// integers and floats step by the field's increment, clamped at zero.
func (m *designModel) adjust(dir float64) {
	f := m.fields[m.cursor]
	v := f.get(&m.params)
	if f.boolean {
		if v == 0 {
			v = 1
		} else {
			v = 0
		}
	} else {
		v += dir * f.step
		if v < 0 {
			v = 0
		}
	}
	f.set(&m.params, v)
}

// switchKind cycles to the next or previous topology kind and resets the
// parameters to that kind's defaults.
func (m designModel) switchKind(dir int) designModel {
	idx := 0
	for i, k := range designKinds {
		if k == m.params.Kind {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(designKinds)) % len(designKinds)
	next := newDesignModel(defaultParams(designKinds[idx]))
	return next
}

func (m designModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Design: %s", m.params.Kind)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ field  ←/→ adjust  tab kind  ⏎ save  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, f := range m.fields {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, f.name, m.formatValue(f)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Parameter", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	spec, err := m.params.Topology()
	if err == nil {
		err = spec.Validate()
	}
	if err != nil {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("  %s", err)))
		b.WriteString("\n")
		return b.String()
	}

	counts := spec.Counts()
	summary := fmt.Sprintf("%d joints · %d members", counts.Joints, counts.Members)
	if counts.Plates > 0 {
		summary += fmt.Sprintf(" · %d plates", counts.Plates)
	}
	b.WriteString("  " + StyleSuccess.Render(iconSuccess) + " " + StyleHighlight.Render(summary))
	b.WriteString("\n\n")

	if generated, err := spec.Generate(); err == nil {
		preview := elevation.Draw(generated, elevation.Options{Width: previewWidth, Height: previewHeight})
		b.WriteString(StyleDim.Render(preview))
	}

	return b.String()
}

// formatValue renders a field value for the parameter table.
func (m designModel) formatValue(f designField) string {
	v := f.get(&m.params)
	switch {
	case f.boolean:
		if v != 0 {
			return "on"
		}
		return "off"
	case f.integer:
		return strconv.Itoa(int(v))
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
