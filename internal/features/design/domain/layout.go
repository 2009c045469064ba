package domain

// Anchor is a normalized position inside the room, both coordinates in [0,1].
type Anchor struct {
	X float64
	Y float64
}

// AnchorTable holds the fixed marker positions. Items beyond the table reuse
// earlier anchors in order, so overlapping markers are expected.
var AnchorTable = [8]Anchor{
	{0.1, 0.1},
	{0.1, 0.8},
	{0.8, 0.1},
	{0.8, 0.8},
	{0.3, 0.5},
	{0.5, 0.3},
	{0.5, 0.7},
	{0.7, 0.5},
}

// LabelOffsetRatio is the label's vertical offset above its marker, relative to breadth.
const LabelOffsetRatio = 0.03

// Placement is one furniture item at its absolute position in meters.
type Placement struct {
	Name   string
	Anchor int
	X      float64
	Y      float64
}

// LabelY returns the y coordinate of the item's text label.
func (p Placement) LabelY(breadth float64) float64 {
	return p.Y + LabelOffsetRatio*breadth
}

// AnchorFor returns the anchor index used by the item at position i.
func AnchorFor(i int) int {
	return i % len(AnchorTable)
}

// PlaceFurniture assigns each item an anchor round-robin and scales it to the room.
func PlaceFurniture(items []string, length, breadth float64) []Placement {
	placements := make([]Placement, 0, len(items))
	for i, name := range items {
		idx := AnchorFor(i)
		a := AnchorTable[idx]
		placements = append(placements, Placement{
			Name:   name,
			Anchor: idx,
			X:      a.X * length,
			Y:      a.Y * breadth,
		})
	}
	return placements
}
