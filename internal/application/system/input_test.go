package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	assert.Equal(t, []ebiten.Key{ebiten.KeySpace}, b.Pause)
	assert.Equal(t, []ebiten.Key{ebiten.KeyArrowRight}, b.Advance)
	assert.Equal(t, []ebiten.Key{ebiten.KeyF12}, b.Screenshot)
	assert.Equal(t, []ebiten.Key{ebiten.KeyEscape}, b.Quit)
	assert.True(t, b.AdvanceOnClick)
}

func TestNewInputSystem(t *testing.T) {
	b := DefaultBindings()

	sys := NewInputSystem(b)

	require.NotNil(t, sys)
	assert.Equal(t, b, sys.bindings)
}
