package easel

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestSessionResize(t *testing.T) {
	s := &session{src: testPattern(1000, 500)}

	// the initial fit Show performs against the clamped request
	err := s.refit(800, 600)
	assert.NoError(t, err)
	assert.Equal(t, 800, s.fitted.Bounds().Dx())
	assert.Equal(t, 400, s.fitted.Bounds().Dy())
	assert.Equal(t, 0, s.offX)
	assert.Equal(t, 100, s.offY)
	assert.Equal(t, 800, s.width)
	assert.Equal(t, 600, s.height)
	assert.True(t, s.stale)

	// a resize reruns the same fit against the new size
	s.stale = false
	err = s.handle(resized{width: 300, height: 300})
	assert.NoError(t, err)
	assert.Equal(t, 300, s.fitted.Bounds().Dx())
	assert.Equal(t, 150, s.fitted.Bounds().Dy())
	assert.Equal(t, 0, s.offX)
	assert.Equal(t, 75, s.offY)
	assert.Equal(t, 300, s.width)
	assert.Equal(t, 300, s.height)
	assert.True(t, s.stale)
}

func TestSessionResizeBelowMinimum(t *testing.T) {
	s := &session{src: testPattern(1000, 500)}
	err := s.refit(800, 600)
	assert.NoError(t, err)

	// the 150 minimum binds the initial request only; a smaller size
	// arriving as a resize is applied as delivered
	err = s.handle(resized{width: 100, height: 100})
	assert.NoError(t, err)
	assert.Equal(t, 100, s.fitted.Bounds().Dx())
	assert.Equal(t, 50, s.fitted.Bounds().Dy())
	assert.Equal(t, 0, s.offX)
	assert.Equal(t, 25, s.offY)
	assert.Equal(t, 100, s.width)
	assert.Equal(t, 100, s.height)
}

func TestSessionSmallImageStaysCentered(t *testing.T) {
	s := &session{src: testPattern(100, 80)}

	// a 50x50 request clamps to the 150x150 minimum before the fit
	width, height := clampWindow(50, 50)
	err := s.refit(width, height)
	assert.NoError(t, err)
	assert.Equal(t, 100, s.fitted.Bounds().Dx())
	assert.Equal(t, 80, s.fitted.Bounds().Dy())
	assert.Equal(t, 25, s.offX)
	assert.Equal(t, 35, s.offY)
	assert.True(t, bytes.Equal(s.src.Pix, s.fitted.Pix))
}

func TestSessionTermination(t *testing.T) {
	tests := []struct {
		name string
		ev   event
	}{
		{
			name: "window close",
			ev:   closeRequested{},
		},
		{
			name: "escape key",
			ev:   escapePressed{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := &session{src: testPattern(10, 10)}
			err := s.handle(test.ev)
			assert.ErrorIs(t, err, ebiten.Termination)
		})
	}
}

func TestSessionIgnoresOtherEvents(t *testing.T) {
	s := &session{src: testPattern(10, 10)}
	err := s.handle(struct{}{})
	assert.NoError(t, err)
	assert.Nil(t, s.fitted)
	assert.False(t, s.stale)
}

func TestSessionRefitIsIdempotent(t *testing.T) {
	s := &session{src: testPattern(1000, 500)}

	err := s.refit(300, 300)
	assert.NoError(t, err)
	first := s.fitted

	err = s.handle(resized{width: 300, height: 300})
	assert.NoError(t, err)
	second := s.fitted

	assert.Equal(t, first.Bounds(), second.Bounds())
	assert.True(t, bytes.Equal(first.Pix, second.Pix))
}

func TestSessionRefitEmptyFit(t *testing.T) {
	s := &session{src: testPattern(10000, 10)}
	err := s.refit(150, 150)
	assert.ErrorContains(t, err, "couldn't fit")
	assert.Nil(t, s.fitted)
	assert.False(t, s.stale)
}

func TestSessionLayout(t *testing.T) {
	s := &session{src: testPattern(1000, 500)}
	err := s.refit(800, 600)
	assert.NoError(t, err)

	// an unchanged layout synthesizes nothing
	w, h := s.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Empty(t, s.pending)

	// a changed layout synthesizes a resize
	w, h = s.Layout(300, 300)
	assert.Equal(t, 300, w)
	assert.Equal(t, 300, h)
	assert.Equal(t, []event{resized{width: 300, height: 300}}, s.pending)

	// degenerate sizes reported while minimized are not resizes
	w, h = s.Layout(0, 0)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Len(t, s.pending, 1)
}
