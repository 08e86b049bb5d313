// merge.go - Merge copy overrides onto a variant's layers.
package scene

import (
	"slices"
	"sort"
)

// Resolve returns the layers of v ready to draw: copy overrides from data
// applied, hidden layers dropped, and the rest stably sorted by Z so layers
// with equal Z keep their file order. Geometry always comes from the scene.
func Resolve(v Variant, data *DataSpec) []Layer {
	var result []Layer

	for _, l := range v.Layers {
		applyLayerDefaults(&l)
		if data != nil {
			if override, ok := data.Layers[l.ID]; ok {
				mergeLayerData(&l, override)
			}
			if override, ok := data.Layers[v.Name+"/"+l.ID]; ok {
				mergeLayerData(&l, override)
			}
		}

		if l.Visible != nil && !*l.Visible {
			continue
		}
		result = append(result, l)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Z < result[j].Z
	})

	return result
}

// mergeLayerData overlays copy overrides onto a layer.
func mergeLayerData(l *Layer, over LayerData) {
	if over.Visible != nil {
		l.Visible = over.Visible
	}
	if over.Text != "" {
		l.Text = over.Text
	}
	if over.Items != nil {
		l.Items = slices.Clone(over.Items) // replace, not append
	}
	if over.Color != "" {
		l.Color = over.Color
	}
}
