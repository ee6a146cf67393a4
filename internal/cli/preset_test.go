package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	apperrors "github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/topology"
)

func TestSplitPresetRef(t *testing.T) {
	tests := []struct {
		ref      string
		wantPath string
		wantName string
	}{
		{"presets.toml", "presets.toml", ""},
		{"presets.toml#roof", "presets.toml", "roof"},
		{"dir/presets.toml#roof-24m", "dir/presets.toml", "roof-24m"},
	}

	for _, tt := range tests {
		path, name := splitPresetRef(tt.ref)
		if path != tt.wantPath || name != tt.wantName {
			t.Errorf("splitPresetRef(%q) = (%q, %q), want (%q, %q)",
				tt.ref, path, name, tt.wantPath, tt.wantName)
		}
	}
}

func writePresetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPresetSingle(t *testing.T) {
	path := writePresetFile(t, `
[roof]
kind = "pratt"
span = 24.0
height = 3.0
panels = 8
`)

	p, err := loadPreset(path, "")
	if err != nil {
		t.Fatalf("loadPreset: %v", err)
	}
	if p.Kind != topology.KindPratt || p.Span != 24 || p.Panels != 8 {
		t.Errorf("unexpected params: %+v", p)
	}
}

func TestLoadPresetNamed(t *testing.T) {
	path := writePresetFile(t, `
[roof]
kind = "pratt"
span = 24.0

[hall]
kind = "warehouse"
bays = 6
width = 80.0
eave_height = 20.0
ridge_height = 28.0
bay_spacing = 25.0
`)

	p, err := loadPreset(path, "hall")
	if err != nil {
		t.Fatalf("loadPreset: %v", err)
	}
	if p.Kind != topology.KindWarehouse || p.Bays != 6 || p.Width != 80 {
		t.Errorf("unexpected params: %+v", p)
	}
}

func TestLoadPresetErrors(t *testing.T) {
	multi := writePresetFile(t, "[a]\nspan = 1.0\n[b]\nspan = 2.0\n")

	tests := []struct {
		name     string
		path     string
		preset   string
		wantCode apperrors.Code
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.toml"), "", apperrors.ErrCodeFileNotFound},
		{"unnamed with multiple presets", multi, "", apperrors.ErrCodeInvalidPreset},
		{"unknown name", multi, "c", apperrors.ErrCodeInvalidPreset},
		{"empty file", writePresetFile(t, ""), "", apperrors.ErrCodeInvalidPreset},
		{"malformed toml", writePresetFile(t, "[a\nspan ="), "", apperrors.ErrCodeInvalidPreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadPreset(tt.path, tt.preset)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}

func TestApplyPresetFlagsWin(t *testing.T) {
	path := writePresetFile(t, `
[roof]
kind = "warren"
span = 24.0
height = 3.0
panels = 8
`)

	flagParams := topology.Params{Kind: topology.KindWarren, Span: 30, Height: 3, Panels: 6}
	flags := pflag.NewFlagSet("warren", pflag.ContinueOnError)
	flags.Float64Var(&flagParams.Span, "span", flagParams.Span, "")
	flags.Float64Var(&flagParams.Height, "height", flagParams.Height, "")
	flags.IntVar(&flagParams.Panels, "panels", flagParams.Panels, "")
	if err := flags.Parse([]string{"--span", "30"}); err != nil {
		t.Fatal(err)
	}

	p, err := applyPreset(flagParams, path, flags)
	if err != nil {
		t.Fatalf("applyPreset: %v", err)
	}

	if p.Span != 30 {
		t.Errorf("span = %v, explicit flag should win over preset", p.Span)
	}
	if p.Panels != 8 {
		t.Errorf("panels = %d, preset should apply when the flag is unset", p.Panels)
	}
	if p.Height != 3 {
		t.Errorf("height = %v, want preset value 3", p.Height)
	}
}

func TestApplyPresetKindMismatch(t *testing.T) {
	path := writePresetFile(t, "[roof]\nkind = \"pratt\"\nspan = 24.0\n")

	flagParams := topology.Params{Kind: topology.KindWarren}
	flags := pflag.NewFlagSet("warren", pflag.ContinueOnError)

	_, err := applyPreset(flagParams, path, flags)
	if err == nil {
		t.Fatal("expected kind mismatch error")
	}
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrCodeInvalidPreset {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestApplyPresetInheritsCommandKind(t *testing.T) {
	path := writePresetFile(t, "[roof]\nspan = 18.0\nheight = 2.5\npanels = 4\n")

	flagParams := topology.Params{Kind: topology.KindHowe, Span: 24, Height: 3, Panels: 6}
	flags := pflag.NewFlagSet("howe", pflag.ContinueOnError)

	p, err := applyPreset(flagParams, path, flags)
	if err != nil {
		t.Fatalf("applyPreset: %v", err)
	}
	if p.Kind != topology.KindHowe {
		t.Errorf("kind = %s, preset without a kind should inherit the command's", p.Kind)
	}
	if p.Span != 18 || p.Panels != 4 {
		t.Errorf("unexpected params: %+v", p)
	}
}
