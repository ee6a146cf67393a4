package schematic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtkb13/framegen/pkg/topology"
)

func TestToDOTPinsJoints(t *testing.T) {
	m, err := topology.PortalSpec{Span: 6, Height: 4}.Generate()
	require.NoError(t, err)

	dot := ToDOT(m, Options{})

	require.True(t, strings.HasPrefix(dot, "graph model {\n"))
	require.Contains(t, dot, "layout=neato;")
	require.Contains(t, dot, `1 [pos="0.000,0.000!"];`)
	require.Contains(t, dot, `2 [pos="3.000,0.000!"];`)
	require.Contains(t, dot, `3 [pos="0.000,2.000!"];`)
	require.Contains(t, dot, `1 -- 3 [color="#241f31"];`)
	require.Contains(t, dot, `3 -- 4 [color="#813d9c"];`)
	require.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestToDOTLabels(t *testing.T) {
	m, err := topology.PortalSpec{Span: 6, Height: 4}.Generate()
	require.NoError(t, err)

	require.NotContains(t, ToDOT(m, Options{}), "plaintext")
	require.Contains(t, ToDOT(m, Options{Labels: true}), `shape=plaintext, label="1"`)
}

func TestToDOTScale(t *testing.T) {
	m, err := topology.PortalSpec{Span: 6, Height: 4}.Generate()
	require.NoError(t, err)

	dot := ToDOT(m, Options{Scale: 1})
	require.Contains(t, dot, `2 [pos="6.000,0.000!"];`)
}

func TestProjectionRecedesAlongZ(t *testing.T) {
	m, err := topology.GridSpec{BaysX: 1, BaysZ: 1, Stories: 1, BayWidth: 4, BayDepth: 4, StoryHeight: 3}.Generate()
	require.NoError(t, err)

	dot := ToDOT(m, Options{Scale: 1})

	// Joint 1 sits at the origin, joint 2 one bay along Z: its projected
	// position must be offset on both axes.
	require.Contains(t, dot, `1 [pos="0.000,0.000!"];`)
	require.Contains(t, dot, `2 [pos="1.638,1.147!"];`)
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">rest</svg>`)
	out := string(normalizeViewBox(in))
	require.Contains(t, out, `viewBox="0 0 100.00 50.00"`)
	require.Contains(t, out, `width="100" height="50"`)

	noBox := []byte(`<svg>x</svg>`)
	require.Equal(t, noBox, normalizeViewBox(noBox))
}
