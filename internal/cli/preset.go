package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	apperrors "github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/topology"
)

// A preset file is a TOML document holding one or more named parameter
// sets, one table per preset:
//
//	[roof-24m]
//	kind = "pratt"
//	span = 24.0
//	height = 3.0
//	panels = 8
//
// A preset reference is either a path (valid when the file holds a
// single preset) or path#name.

// splitPresetRef splits "path#name" into its parts. The name is empty
// when the reference has no fragment.
func splitPresetRef(ref string) (path, name string) {
	if i := strings.LastIndex(ref, "#"); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// loadPreset reads the preset file at path and returns the named
// parameter set. When name is empty the file must hold exactly one
// preset.
func loadPreset(path, name string) (topology.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return topology.Params{}, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "preset file not found: %s", path)
		}
		return topology.Params{}, apperrors.Wrap(apperrors.ErrCodeInvalidPreset, err, "reading preset file %s", path)
	}

	var presets map[string]topology.Params
	if err := toml.Unmarshal(data, &presets); err != nil {
		return topology.Params{}, apperrors.Wrap(apperrors.ErrCodeInvalidPreset, err, "parsing preset file %s", path)
	}
	if len(presets) == 0 {
		return topology.Params{}, apperrors.New(apperrors.ErrCodeInvalidPreset, "preset file %s holds no presets", path)
	}

	if name == "" {
		if len(presets) > 1 {
			names := make([]string, 0, len(presets))
			for n := range presets {
				names = append(names, n)
			}
			return topology.Params{}, apperrors.New(apperrors.ErrCodeInvalidPreset,
				"preset file %s holds %d presets (%s), name one with path#name", path, len(presets), strings.Join(names, ", "))
		}
		for _, p := range presets {
			return p, nil
		}
	}

	p, ok := presets[name]
	if !ok {
		return topology.Params{}, apperrors.New(apperrors.ErrCodeInvalidPreset, "preset %q not found in %s", name, path)
	}
	return p, nil
}

// applyPreset resolves the final parameter set for a generate run:
// preset values form the base, and any flag set explicitly on the
// command line wins over the preset.
func applyPreset(flagParams topology.Params, ref string, flags *pflag.FlagSet) (topology.Params, error) {
	path, name := splitPresetRef(ref)
	p, err := loadPreset(path, name)
	if err != nil {
		return topology.Params{}, err
	}

	if p.Kind == "" {
		p.Kind = flagParams.Kind
	}
	if p.Kind != flagParams.Kind {
		return topology.Params{}, apperrors.New(apperrors.ErrCodeInvalidPreset,
			"preset kind %q does not match the %s command", p.Kind, flagParams.Kind)
	}

	flags.Visit(func(f *pflag.Flag) {
		overrideParam(&p, flagParams, f.Name)
	})
	return p, nil
}

// overrideParam copies the dimension named by flag from src into dst.
// Flags that do not map to a parameter are ignored.
func overrideParam(dst *topology.Params, src topology.Params, flag string) {
	switch flag {
	case "span":
		dst.Span = src.Span
	case "height":
		dst.Height = src.Height
	case "panels":
		dst.Panels = src.Panels
	case "bays":
		dst.Bays = src.Bays
	case "bay-spacing":
		dst.BaySpacing = src.BaySpacing
	case "width":
		dst.Width = src.Width
	case "eave-height":
		dst.EaveHeight = src.EaveHeight
	case "ridge-height":
		dst.RidgeHeight = src.RidgeHeight
	case "purlins":
		dst.Purlins = src.Purlins
	case "purlin-spacing":
		dst.PurlinSpacing = src.PurlinSpacing
	case "bracing":
		dst.Bracing = src.Bracing
	case "bays-x":
		dst.BaysX = src.BaysX
	case "bays-z":
		dst.BaysZ = src.BaysZ
	case "stories":
		dst.Stories = src.Stories
	case "bay-width":
		dst.BayWidth = src.BayWidth
	case "bay-depth":
		dst.BayDepth = src.BayDepth
	case "story-height":
		dst.StoryHeight = src.StoryHeight
	case "wall-height":
		dst.WallHeight = src.WallHeight
	case "wall-width":
		dst.WallWidth = src.WallWidth
	case "slab-length":
		dst.SlabLength = src.SlabLength
	case "slab-width":
		dst.SlabWidth = src.SlabWidth
	}
}
