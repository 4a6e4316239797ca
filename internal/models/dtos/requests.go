package dtos

// SheetMappingPatch carries an operator override for one sheet while the
// session is previewing. Nil fields are left untouched.
type SheetMappingPatch struct {
	LocationID *string `json:"location_id,omitempty"`
	Ignored    *bool   `json:"ignored,omitempty"`
}
