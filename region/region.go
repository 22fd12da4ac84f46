package region

// Region identifies one of the four shadow regions of a canvas.
type Region int

const (
	// FallbackDescription is the visually hidden whole-canvas description.
	FallbackDescription Region = iota

	// FallbackTable is the visually hidden per-element description table.
	FallbackTable

	// LabelDescription is the visible whole-canvas caption.
	LabelDescription

	// LabelTable is the visible per-element caption table.
	LabelTable
)

func (r Region) String() string {
	switch r {
	case FallbackDescription:
		return "FallbackDescription"
	case FallbackTable:
		return "FallbackTable"
	case LabelDescription:
		return "LabelDescription"
	case LabelTable:
		return "LabelTable"
	default:
		return "Unknown"
	}
}

// Label reports whether r is one of the visible label regions.
func (r Region) Label() bool {
	return r == LabelDescription || r == LabelTable
}

// Id suffixes. All shadow markup ids derive from the canvas id plus one of
// these, so a canvas id shared between two canvases would collide; the host
// must keep canvas ids unique.
const (
	suffixFallbackContainer = "_shadow"
	suffixFallbackDesc      = "_shadowDesc"
	suffixFallbackTable     = "_shadowTable"
	suffixFallbackRow       = "_shadowRow_"
	suffixLabelContainer    = "_label"
	suffixLabelDesc         = "_labelDesc"
	suffixLabelTable        = "_labelTable"
	suffixLabelRow          = "_labelRow_"

	suffixAccessibleOutput      = "_accessibleOutput"
	suffixAccessibleOutputLabel = "_accessibleOutputLabel"
)

// ContainerID returns the id of the region's container element.
func ContainerID(canvasID string, r Region) string {
	if r.Label() {
		return canvasID + suffixLabelContainer
	}
	return canvasID + suffixFallbackContainer
}

// LeafID returns the id of the region's addressable leaf: the description
// paragraph for description regions, the table element for table regions.
func LeafID(canvasID string, r Region) string {
	switch r {
	case FallbackDescription:
		return canvasID + suffixFallbackDesc
	case FallbackTable:
		return canvasID + suffixFallbackTable
	case LabelDescription:
		return canvasID + suffixLabelDesc
	case LabelTable:
		return canvasID + suffixLabelTable
	}
	return ""
}

// RowID returns the id of a per-element row inside a table region. The key
// must already be sanitized.
func RowID(canvasID string, r Region, key string) string {
	if r.Label() {
		return canvasID + suffixLabelRow + key
	}
	return canvasID + suffixFallbackRow + key
}

// AccessibleOutputID returns the id an external accessible-output region
// would carry for the given canvas. External outputs are produced by other
// tooling; the scaffold anchors new containers before them but never owns
// or mutates them.
func AccessibleOutputID(canvasID string, label bool) string {
	if label {
		return canvasID + suffixAccessibleOutputLabel
	}
	return canvasID + suffixAccessibleOutput
}
