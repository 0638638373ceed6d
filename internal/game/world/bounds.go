package world

import "fmt"

// Bounds describes the rectangular table surface. The maximum edges
// are exclusive: a cell (x, y) is on the table when
// XMin <= x < XMax and YMin <= y < YMax.
type Bounds struct {
	XMin int
	YMin int
	XMax int
	YMax int
}

// Contains reports whether the cell (x, y) lies on the table.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.XMin && x < b.XMax && y >= b.YMin && y < b.YMax
}

// Validate checks that the bounds describe a non-empty surface.
//
// Postcondition: Returns nil if valid, or an error describing the violation.
func (b Bounds) Validate() error {
	if b.XMin >= b.XMax {
		return fmt.Errorf("table bounds: xmin (%d) must be less than xmax (%d)", b.XMin, b.XMax)
	}
	if b.YMin >= b.YMax {
		return fmt.Errorf("table bounds: ymin (%d) must be less than ymax (%d)", b.YMin, b.YMax)
	}
	return nil
}

// String returns the bounds in "xmin,ymin to xmax,ymax" form.
func (b Bounds) String() string {
	return fmt.Sprintf("%d,%d to %d,%d", b.XMin, b.YMin, b.XMax, b.YMax)
}
