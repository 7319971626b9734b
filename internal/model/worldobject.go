package model

import "fmt"

// Handle is a generation-checked reference to a unit slot in the world registry.
// A handle whose generation no longer matches the slot resolves to "not found",
// so effects and groups never dereference a destroyed unit.
//
// The zero Handle is invalid.
type Handle struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether h is the invalid zero handle.
func (h Handle) IsZero() bool {
	return h.Gen == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d#%d", h.Index, h.Gen)
}
