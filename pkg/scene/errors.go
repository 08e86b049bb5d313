package scene

import "fmt"

// RenderError is returned when a variant cannot be produced. It names the
// variant and, when known, the layer that failed; errors.Is and errors.As
// see through it to the underlying cause.
type RenderError struct {
	Variant string
	Layer   string
	Err     error
}

func (e *RenderError) Error() string {
	if e.Layer == "" {
		return fmt.Sprintf("variant %s: %v", e.Variant, e.Err)
	}
	return fmt.Sprintf("variant %s, layer %s: %v", e.Variant, e.Layer, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
