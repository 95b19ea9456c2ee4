package reduce

import (
	"fmt"
	"slices"
)

// Transform is a named, pure element function. Apply must not depend on or
// mutate shared state; its only failure is arithmetic overflow.
type Transform struct {
	Name  string
	Apply func(int64) (int64, error)
}

var (
	// Square maps n to n*n. It is the default transform.
	Square = Transform{Name: "square", Apply: func(n int64) (int64, error) {
		return mulChecked(n, n)
	}}

	// Identity maps n to itself.
	Identity = Transform{Name: "identity", Apply: func(n int64) (int64, error) {
		return n, nil
	}}

	// Cube maps n to n*n*n.
	Cube = Transform{Name: "cube", Apply: func(n int64) (int64, error) {
		sq, err := mulChecked(n, n)
		if err != nil {
			return 0, err
		}
		return mulChecked(sq, n)
	}}
)

var transforms = map[string]Transform{
	Square.Name:   Square,
	Identity.Name: Identity,
	Cube.Name:     Cube,
}

// TransformByName looks up a built-in transform.
func TransformByName(name string) (Transform, error) {
	if tf, ok := transforms[name]; ok {
		return tf, nil
	}
	return Transform{}, fmt.Errorf("unknown transform %q (available: %v)", name, TransformNames())
}

// TransformNames lists the built-in transforms in sorted order.
func TransformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
