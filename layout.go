package abicodec

import "strconv"

// LayoutEntry describes where one value of a type tree is placed.
type LayoutEntry struct {
	Path     string `json:"path" yaml:"path"`
	Type     string `json:"type" yaml:"type"`
	Dynamic  bool   `json:"dynamic" yaml:"dynamic"`
	HeadSize int    `json:"headSize" yaml:"headSize"`
}

// Layout walks t depth first and reports each node's head size: the bytes
// it takes in its parent's head region. Array elements are reported once,
// under the path "[]" or "[k]".
func Layout(t ParamType) []LayoutEntry {
	var entries []LayoutEntry
	layout(t, "", &entries)
	return entries
}

func layout(t ParamType, path string, entries *[]LayoutEntry) {
	size, ok := headSize(t)
	if !ok {
		size = -1
	}
	*entries = append(*entries, LayoutEntry{
		Path:     path,
		Type:     t.String(),
		Dynamic:  t.IsDynamic(),
		HeadSize: size,
	})
	switch v := t.(type) {
	case FixedArrayType:
		layout(v.Elem, path+"["+strconv.Itoa(v.Size)+"]", entries)
	case DynamicArrayType:
		layout(v.Elem, path+"[]", entries)
	case TupleType:
		for i, c := range v.Components {
			name := c.Name
			if name == "" {
				name = strconv.Itoa(i)
			}
			if path != "" {
				name = path + "." + name
			}
			layout(c.Type, name, entries)
		}
	}
}
