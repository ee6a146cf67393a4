package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtkb13/framegen/pkg/model"
	"github.com/mtkb13/framegen/pkg/topology"
)

func TestRoundTrip(t *testing.T) {
	specs := []topology.Topology{
		topology.TrussSpec{Type: topology.KindPratt, Span: 24, Height: 3, Panels: 6},
		topology.WarehouseSpec{Bays: 3, BaySpacing: 20, Width: 40, EaveHeight: 12, RidgeHeight: 16},
		topology.PlateSpec{WallHeight: 3, WallWidth: 4, SlabLength: 5, SlabWidth: 2},
	}

	for _, spec := range specs {
		t.Run(string(spec.Kind()), func(t *testing.T) {
			m, err := spec.Generate()
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, WriteJSON(m, &buf))

			got, err := ReadJSON(&buf)
			require.NoError(t, err)
			require.Equal(t, m, got)
		})
	}
}

func TestExportImportFile(t *testing.T) {
	m, err := topology.PortalSpec{Span: 10, Height: 4}.Generate()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "portal.json")
	require.NoError(t, ExportJSON(m, path))

	got, err := ImportJSON(path)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestReadRejectsUnknownFields(t *testing.T) {
	in := `{"kind": "portal", "joints": [{"id": 1, "x": 0, "y": 0, "z": 0, "mass": 12}], "members": []}`
	_, err := ReadJSON(strings.NewReader(in))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

func TestReadRejectsInvalidModel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "NoJoints",
			in:   `{"kind": "portal", "joints": [], "members": []}`,
			want: model.ErrEmptyModel,
		},
		{
			name: "DanglingMember",
			in: `{"kind": "portal",
				"joints": [{"id": 1, "x": 0, "y": 0, "z": 0}],
				"members": [{"id": 1, "start": 1, "end": 9, "role": "column"}]}`,
			want: model.ErrDanglingEndpoint,
		},
		{
			name: "UnknownRole",
			in: `{"kind": "portal",
				"joints": [{"id": 1, "x": 0, "y": 0, "z": 0}, {"id": 2, "x": 0, "y": 3, "z": 0}],
				"members": [{"id": 1, "start": 1, "end": 2, "role": "strut"}]}`,
			want: model.ErrUnknownRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
