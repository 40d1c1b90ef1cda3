package scene

import "github.com/pkg/errors"

// Build resolves a scene name (as named on the command line or in a render
// profile) to its constructor. seed is only consulted by the scenes with
// random construction-time geometry or noise ("marble" and "final").
func Build(name string, seed int64) (*Scene, error) {
	switch name {
	case "two-sphere":
		return NewTwoSphereScene(), nil
	case "cornell":
		return NewCornellScene(), nil
	case "cornell-boxes":
		return NewCornellBoxesScene(), nil
	case "cornell-smoke":
		return NewCornellSmokeScene(), nil
	case "marble":
		return NewMarbleScene(seed), nil
	case "final":
		return NewFinalScene(seed), nil
	default:
		return nil, errors.Errorf("unknown scene %q", name)
	}
}
