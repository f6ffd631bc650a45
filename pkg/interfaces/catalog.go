package interfaces

// FieldKind classifies how a declared component property is interpreted by
// the build pipeline. URL-bearing kinds drive asset extraction.
type FieldKind string

const (
	FieldKindText  FieldKind = "text"
	FieldKindImage FieldKind = "image"
	FieldKindVideo FieldKind = "video"
	FieldKindFile  FieldKind = "file"
	FieldKindLink  FieldKind = "link"
	FieldKindColor FieldKind = "color"
)

// URLBearing reports whether values of this kind reference external assets.
func (k FieldKind) URLBearing() bool {
	switch k {
	case FieldKindImage, FieldKindVideo, FieldKindFile, FieldKindLink:
		return true
	default:
		return false
	}
}

// FieldCatalog declares, per component type, which property keys carry which
// field kinds. The build core consumes it as a read-only lookup service.
type FieldCatalog interface {
	// Fields returns the declared field kinds for a component type. The
	// second return is false when the type has no catalog entry.
	Fields(componentType string) (map[string]FieldKind, bool)
}
