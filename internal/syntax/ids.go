package syntax

type (
	// NodeID addresses a node in a tree arena. 1-based, 0 is invalid.
	NodeID uint32
	// TokenID addresses a token in a tree arena. 1-based, 0 is invalid.
	TokenID uint32
)

const (
	NoNodeID  NodeID  = 0
	NoTokenID TokenID = 0
)

func (id NodeID) IsValid() bool  { return id != NoNodeID }
func (id TokenID) IsValid() bool { return id != NoTokenID }
