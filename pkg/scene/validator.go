// validator.go - Validate scenes and copy files.
package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rafsoft/adstencil/pkg/generator"
)

// Validate checks a parsed scene for errors that would make a variant fail
// before any pixel is drawn. All problems are reported at once.
func Validate(s *Scene) error {
	var errs []error
	if len(s.Variants) == 0 {
		errs = append(errs, errors.New("scene has no variants"))
	}

	names := make(map[string]struct{}, len(s.Variants))
	for _, v := range s.Variants {
		if v.Name == "" {
			errs = append(errs, errors.New("variant without a name"))
		} else if _, dup := names[v.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate variant %q", v.Name))
		}
		names[v.Name] = struct{}{}

		if v.Canvas.Width <= 0 || v.Canvas.Height <= 0 {
			errs = append(errs, fmt.Errorf("variant %q: canvas %dx%d: set width/height or a known preset", v.Name, v.Canvas.Width, v.Canvas.Height))
		}
		if _, err := generator.Ext(v.Format); err != nil {
			errs = append(errs, fmt.Errorf("variant %q: %w", v.Name, err))
		}

		ids := make(map[string]struct{}, len(v.Layers))
		for _, l := range v.Layers {
			if l.ID == "" {
				errs = append(errs, fmt.Errorf("variant %q: layer without an id", v.Name))
			} else if _, dup := ids[l.ID]; dup {
				errs = append(errs, fmt.Errorf("variant %q: duplicate layer %q", v.Name, l.ID))
			}
			ids[l.ID] = struct{}{}

			if err := validateLayer(s, l); err != nil {
				errs = append(errs, fmt.Errorf("variant %q, layer %q: %w", v.Name, l.ID, err))
			}
		}
	}
	return errors.Join(errs...)
}

func validateLayer(s *Scene, l Layer) error {
	switch l.Align {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf("unknown align %q", l.Align)
	}
	switch l.From {
	case FromTop, FromBottom:
	default:
		return fmt.Errorf("unknown from %q", l.From)
	}

	switch l.Kind {
	case KindText, KindBadge:
		if l.Text == "" {
			return errors.New("text is empty")
		}
	case KindChecklist:
		if len(l.Items) == 0 {
			return errors.New("checklist has no items")
		}
	case KindImage, KindFrame:
		if _, ok := s.Assets[l.Asset]; !ok {
			return fmt.Errorf("unknown asset %q", l.Asset)
		}
		if l.Kind == KindFrame && l.Height <= 0 {
			return errors.New("frame needs a height")
		}
		if l.Height < 0 || l.MaxWidth < 0 || l.CornerRadius < 0 {
			return errors.New("negative size")
		}
	default:
		return fmt.Errorf("unknown kind %q", l.Kind)
	}
	return nil
}

// ValidateData checks that a copy file references only known layers and
// variants. Returns warnings (never fatal errors) for graceful degradation.
func ValidateData(data *DataSpec, s *Scene) []string {
	if data == nil {
		return nil
	}

	known := make(map[string]struct{})
	for _, v := range s.Variants {
		for _, l := range v.Layers {
			known[l.ID] = struct{}{}
			known[v.Name+"/"+l.ID] = struct{}{}
		}
	}

	var warnings []string
	for key := range data.Layers {
		if _, ok := known[key]; !ok {
			warnings = append(warnings, fmt.Sprintf("copy file references unknown layer %q; ignored", key))
		}
	}
	return warnings
}

// FormatVariants returns a human-readable list of the scene's variants and
// the files they render to.
func FormatVariants(s *Scene) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scene: %s", s.Meta.Name)
	if s.Meta.Version != "" {
		fmt.Fprintf(&b, " (v%s)", s.Meta.Version)
	}
	if s.Meta.Author != "" {
		fmt.Fprintf(&b, " by %s", s.Meta.Author)
	}
	b.WriteString("\n")
	if s.Meta.Description != "" {
		b.WriteString(s.Meta.Description + "\n")
	}

	b.WriteString("\nVariants:\n")
	for _, v := range s.Variants {
		name, err := generator.OutputName(v.Name, v.Canvas.Width, v.Canvas.Height, v.Format)
		if err != nil {
			name = "invalid: " + err.Error()
		}
		fmt.Fprintf(&b, "  %-20s %5dx%-5d %2d layers  -> %s\n", v.Name, v.Canvas.Width, v.Canvas.Height, len(v.Layers), name)
	}
	return b.String()
}
