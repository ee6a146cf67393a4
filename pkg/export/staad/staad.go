// Package staad serializes a structural model into STAAD-style text input:
// joint coordinates, member incidences, shell element incidences, member
// group definitions keyed by role, and supports derived from the model's
// supports landmark.
//
// The generators work in a Y-up frame. STAAD installations differ in which
// axis is vertical, so [Options.VerticalAxis] selects the output
// convention; with [AxisZ] the writer swaps Y and Z on every joint, and
// the rest of the document is coordinate-free and unaffected.
package staad

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mtkb13/framegen/pkg/model"
)

// Axis selects which output axis is vertical.
type Axis string

// Supported vertical-axis conventions.
const (
	AxisY Axis = "y" // vertical axis is Y, coordinates pass through
	AxisZ Axis = "z" // vertical axis is Z, Y and Z are swapped on output
)

// Support selects the support type assigned to the supports landmark.
type Support string

// Supported support types.
const (
	SupportPinned Support = "PINNED"
	SupportFixed  Support = "FIXED"
)

// Options configure the writer. The zero value produces a Y-up document
// titled "framegen model" with pinned supports.
type Options struct {
	Title        string
	VerticalAxis Axis
	Support      Support
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "framegen model"
	}
	if o.VerticalAxis == "" {
		o.VerticalAxis = AxisY
	}
	if o.Support == "" {
		o.Support = SupportPinned
	}
	return o
}

// entriesPerLine controls how many semicolon-separated entries share one
// output line in the coordinate and incidence tables.
const entriesPerLine = 4

// Write serializes m as a STAAD input document to w.
func Write(m *model.Model, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	if opts.VerticalAxis != AxisY && opts.VerticalAxis != AxisZ {
		return fmt.Errorf("unknown vertical axis %q", opts.VerticalAxis)
	}
	if opts.Support != SupportPinned && opts.Support != SupportFixed {
		return fmt.Errorf("unknown support type %q", opts.Support)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "STAAD SPACE %s\n", opts.Title)
	b.WriteString("UNIT METER KN\n")

	b.WriteString("JOINT COORDINATES\n")
	writeEntries(&b, len(m.Joints), func(i int) string {
		j := m.Joints[i]
		y, z := j.Y, j.Z
		if opts.VerticalAxis == AxisZ {
			y, z = z, y
		}
		return fmt.Sprintf("%d %s %s %s", j.ID, num(j.X), num(y), num(z))
	})

	if len(m.Members) > 0 {
		b.WriteString("MEMBER INCIDENCES\n")
		writeEntries(&b, len(m.Members), func(i int) string {
			mb := m.Members[i]
			return fmt.Sprintf("%d %d %d", mb.ID, mb.Start, mb.End)
		})
	}

	if len(m.Plates) > 0 {
		b.WriteString("ELEMENT INCIDENCES SHELL\n")
		writeEntries(&b, len(m.Plates), func(i int) string {
			p := m.Plates[i]
			return fmt.Sprintf("%d %d %d %d %d", p.ID, p.Corners[0], p.Corners[1], p.Corners[2], p.Corners[3])
		})
	}

	writeGroups(&b, m)

	if supports := m.Landmark(model.LandmarkSupports); len(supports) > 0 {
		b.WriteString("SUPPORTS\n")
		fmt.Fprintf(&b, "%s %s\n", idList(supports), opts.Support)
	}

	b.WriteString("FINISH\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Export writes a model to a STAAD input file at path.
func Export(m *model.Model, path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(m, f, opts); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// GroupName returns the STAAD group name for a role, for example
// "_CHORD_TOP" for role chord-top.
func GroupName(r model.Role) string {
	return "_" + strings.ToUpper(strings.ReplaceAll(string(r), "-", "_"))
}

// writeGroups emits one member group per role present in the model, in
// declaration order so output is deterministic.
func writeGroups(b *strings.Builder, m *model.Model) {
	groups := m.RoleMembers()
	if len(groups) == 0 {
		return
	}

	b.WriteString("START GROUP DEFINITION\n")
	b.WriteString("MEMBER\n")
	for _, role := range model.Roles {
		ids, ok := groups[role]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "%s %s\n", GroupName(role), idList(ids))
	}
	b.WriteString("END GROUP DEFINITION\n")
}

// writeEntries writes n entries, entriesPerLine per line, joined by "; ".
func writeEntries(b *strings.Builder, n int, entry func(i int) string) {
	for start := 0; start < n; start += entriesPerLine {
		end := min(start+entriesPerLine, n)
		parts := make([]string, 0, entriesPerLine)
		for i := start; i < end; i++ {
			parts = append(parts, entry(i))
		}
		b.WriteString(strings.Join(parts, "; "))
		b.WriteByte('\n')
	}
}

// idList renders ids space separated, compressing runs of three or more
// consecutive ids into "first TO last" the way STAAD lists are written.
func idList(ids []int) string {
	var parts []string
	for i := 0; i < len(ids); {
		j := i
		for j+1 < len(ids) && ids[j+1] == ids[j]+1 {
			j++
		}
		if j-i >= 2 {
			parts = append(parts, fmt.Sprintf("%d TO %d", ids[i], ids[j]))
		} else {
			for k := i; k <= j; k++ {
				parts = append(parts, strconv.Itoa(ids[k]))
			}
		}
		i = j + 1
	}
	return strings.Join(parts, " ")
}

// num formats a coordinate with the shortest exact decimal representation.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
