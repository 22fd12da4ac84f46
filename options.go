package umbra

// Mode selects which regions a description call updates. The zero value,
// Fallback, updates only the hidden fallback region; Label additionally
// maintains the visible caption region. There is no label-only mode: a
// visible caption always has a hidden counterpart.
type Mode int

const (
	// Fallback updates only the visually hidden region.
	Fallback Mode = iota

	// Label updates the hidden region and the visible caption region.
	Label
)

func (m Mode) String() string {
	switch m {
	case Fallback:
		return "Fallback"
	case Label:
		return "Label"
	default:
		return "Unknown"
	}
}

// modeOf resolves the optional trailing mode argument of the describe
// operations. Omitted means Fallback.
func modeOf(modes []Mode) Mode {
	if len(modes) == 0 {
		return Fallback
	}
	return modes[0]
}
