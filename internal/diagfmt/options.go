// Package diagfmt renders findings for humans and tools: a colored pretty
// form with source context, and a JSON form for editors and CI.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) format() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// PrettyOpts configures pretty-printing of findings.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// ShowSource prints the offending source line with a caret underline.
	ShowSource bool
}

// JSONOpts configures JSON output of findings.
type JSONOpts struct {
	IncludePositions bool // add line/col next to byte offsets
	PathMode         PathMode
	Max              int // truncate output, not the input
}
