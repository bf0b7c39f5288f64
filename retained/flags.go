package retained

import "strings"

// Tag conventions understood by ParseStickyTag. Matching is by substring so
// one tag may combine several markers, e.g. "sticky-nonconstant".
const (
	StickyTag           = "sticky"
	TagFlagNonConstant  = "-nonconstant"
	TagFlagTransparency = "-hastransparancy"
)

// StickyFlags is the set of sticky capabilities of a widget.
type StickyFlags uint8

const (
	// FlagSticky marks a widget that pins to the top of its scroll view.
	FlagSticky StickyFlags = 1 << iota

	// FlagNonConstant marks content that redraws on its own (spinners,
	// animated children); the pinned copy is invalidated periodically.
	FlagNonConstant

	// FlagHasTransparency marks content that is not fully opaque. The
	// natural-position copy is hidden while pinned so the two do not
	// composite over each other.
	FlagHasTransparency
)

// Has reports whether every flag in f is set.
func (s StickyFlags) Has(f StickyFlags) bool {
	return s&f == f
}

func (s StickyFlags) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s.Has(FlagSticky) {
		parts = append(parts, "sticky")
	}
	if s.Has(FlagNonConstant) {
		parts = append(parts, "nonconstant")
	}
	if s.Has(FlagHasTransparency) {
		parts = append(parts, "hastransparency")
	}
	return strings.Join(parts, "|")
}

// ParseStickyTag derives flags from a tag string. The modifier markers are
// only honoured together with the sticky marker.
func ParseStickyTag(tag string) StickyFlags {
	if !strings.Contains(tag, StickyTag) {
		return 0
	}
	flags := FlagSticky
	if strings.Contains(tag, TagFlagNonConstant) {
		flags |= FlagNonConstant
	}
	if strings.Contains(tag, TagFlagTransparency) {
		flags |= FlagHasTransparency
	}
	return flags
}
