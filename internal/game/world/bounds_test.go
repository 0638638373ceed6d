package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBounds_ContainsHalfOpen(t *testing.T) {
	b := Bounds{XMin: 0, YMin: 0, XMax: 5, YMax: 5}

	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(4, 4))
	assert.False(t, b.Contains(5, 4), "x max edge is exclusive")
	assert.False(t, b.Contains(4, 5), "y max edge is exclusive")
	assert.False(t, b.Contains(-1, 0))
	assert.False(t, b.Contains(0, -1))
}

func TestBounds_NegativeOrigin(t *testing.T) {
	b := Bounds{XMin: -2, YMin: -2, XMax: 2, YMax: 2}

	assert.True(t, b.Contains(-2, -2))
	assert.True(t, b.Contains(1, 1))
	assert.False(t, b.Contains(2, 0))
}

func TestBounds_Validate(t *testing.T) {
	assert.NoError(t, Bounds{XMin: 0, YMin: 0, XMax: 1, YMax: 1}.Validate())
	assert.Error(t, Bounds{XMin: 0, YMin: 0, XMax: 0, YMax: 5}.Validate())
	assert.Error(t, Bounds{XMin: 0, YMin: 5, XMax: 5, YMax: 5}.Validate())
	assert.Error(t, Bounds{XMin: 3, YMin: 0, XMax: 1, YMax: 5}.Validate())
}

func TestBounds_String(t *testing.T) {
	b := Bounds{XMin: 0, YMin: 1, XMax: 8, YMax: 9}
	assert.Equal(t, "0,1 to 8,9", b.String())
}

func TestPropertyValidBoundsContainTheirMinCorner(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xmin := rapid.IntRange(-100, 100).Draw(t, "xmin")
		ymin := rapid.IntRange(-100, 100).Draw(t, "ymin")
		xmax := rapid.IntRange(xmin+1, xmin+200).Draw(t, "xmax")
		ymax := rapid.IntRange(ymin+1, ymin+200).Draw(t, "ymax")
		b := Bounds{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
		if err := b.Validate(); err != nil {
			t.Fatalf("bounds %v should be valid: %v", b, err)
		}
		if !b.Contains(xmin, ymin) {
			t.Fatalf("bounds %v should contain min corner", b)
		}
		if b.Contains(xmax, ymax) {
			t.Fatalf("bounds %v should not contain max corner", b)
		}
	})
}
