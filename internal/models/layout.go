package models

// PropertyLayout is the generated floor/room/bed tree of a new property.
type PropertyLayout struct {
	Floors []*Floor
	Rooms  []*Room
	Beds   []*Bed
}
