// loader.go - Load scene files and .zip bundles, apply defaults, load copy files.
package scene

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rafsoft/adstencil/pkg/typeset"
)

// SceneFile is the scene's name inside a .zip bundle.
const SceneFile = "scene.json"

// Load reads a scene from a JSON file or a .zip bundle holding scene.json
// and its assets. Relative asset and font paths resolve against the scene's
// directory. The returned cleanup function removes any extracted files.
func Load(path string) (*Scene, func(), error) {
	noop := func() {}

	if strings.ToLower(filepath.Ext(path)) != ".zip" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, noop, fmt.Errorf("read scene: %w", err)
		}
		s, err := Parse(data, filepath.Dir(path))
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", path, err)
		}
		return s, noop, nil
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, noop, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	tmpDir, err := os.MkdirTemp("", "adstencil-*")
	if err != nil {
		return nil, noop, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	if err := extractZip(r, tmpDir); err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("extract %s: %w", path, err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, SceneFile))
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("read %s: %w", SceneFile, err)
	}
	s, err := Parse(data, tmpDir)
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("%s: %w", path, err)
	}
	return s, cleanup, nil
}

// Parse decodes scene JSON, resolves relative paths against baseDir and
// applies defaults. It does not validate; see Validate.
func Parse(data []byte, baseDir string) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	resolvePaths(&s, baseDir)
	applyThemeDefaults(&s.Theme)
	for i := range s.Variants {
		v := &s.Variants[i]
		if dims, ok := Presets[v.Canvas.Preset]; ok {
			v.Canvas.Width, v.Canvas.Height = dims[0], dims[1]
		}
		if v.Format == "" {
			v.Format = s.Output.Format
		}
		if v.Quality == 0 {
			v.Quality = s.Output.Quality
		}
		for j := range v.Layers {
			applyLayerDefaults(&v.Layers[j])
		}
	}
	return &s, nil
}

// LoadData reads a copy file. A malformed file is reported as a warning and
// replaced by an empty one, so the scene still renders with its own copy.
func LoadData(path string) (*DataSpec, []string, error) {
	var warnings []string

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read copy file: %w", err)
	}

	var spec DataSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		warnings = append(warnings, fmt.Sprintf("malformed copy file %s: %v; using scene copy", path, err))
		return &DataSpec{Layers: make(map[string]LayerData)}, warnings, nil
	}

	if spec.Layers == nil {
		spec.Layers = make(map[string]LayerData)
	}

	return &spec, warnings, nil
}

// resolvePaths makes all relative asset and font paths absolute using baseDir.
func resolvePaths(s *Scene, baseDir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}

	for name, a := range s.Assets {
		a.Path = resolve(a.Path)
		s.Assets[name] = a
	}
	for role, f := range s.Theme.Fonts {
		f.Path = resolve(f.Path)
		s.Theme.Fonts[role] = f
	}
}

func applyThemeDefaults(t *Theme) {
	if t.Gradient.Top == "" {
		t.Gradient.Top = "#0a1e50"
	}
	if t.Gradient.Bottom == "" {
		t.Gradient.Bottom = "#143c8c"
	}
	if t.Symbols == "" {
		t.Symbols = typeset.DefaultSymbols
	}
}

// applyLayerDefaults sets sane fallbacks for layer fields.
func applyLayerDefaults(l *Layer) {
	if l.Align == "" {
		l.Align = AlignLeft
	}
	if l.From == "" {
		l.From = FromTop
	}

	switch l.Kind {
	case KindText, KindBadge, KindChecklist:
		if l.Size <= 0 {
			l.Size = 24
		}
		if l.Color == "" {
			l.Color = "white"
		}
		if l.Font == "" {
			l.Font = typeset.RoleMedium
			if l.Kind == KindText {
				l.Font = typeset.RoleBold
			}
		}
	}

	switch l.Kind {
	case KindBadge:
		if l.Background == "" {
			l.Background = "badge"
		}
		if l.AccentColor == "" {
			l.AccentColor = "gold"
		}
		if l.Padding == nil {
			l.Padding = &[2]int{16, 8}
		}
	case KindChecklist:
		if l.AccentColor == "" {
			l.AccentColor = "accentGreen"
		}
		if l.Gap == 0 {
			l.Gap = typeset.CheckGap
		}
		if l.Spacing <= 0 {
			l.Spacing = int(l.Size * 1.5)
		}
	}

	if l.Visible == nil {
		t := true
		l.Visible = &t
	}
}

// extractZip extracts all files from a zip reader into destDir.
func extractZip(r *zip.ReadCloser, destDir string) error {
	for _, f := range r.File {
		target := filepath.Join(destDir, f.Name)

		// Guard against zip slip.
		if !strings.HasPrefix(filepath.Clean(target), filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal path in zip: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
