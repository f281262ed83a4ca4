//go:build sdl
// +build sdl

package renderers

import (
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestProjectClip(t *testing.T) {
	scale := imgui.Vec2{X: 2, Y: 2}
	r, ok := projectClip(imgui.Vec4{X: 10, Y: 20, Z: 110, W: 70}, imgui.Vec2{}, scale, 1000, 1000)
	assert.True(t, ok)
	assert.Equal(t, sdl.Rect{X: 20, Y: 40, W: 200, H: 100}, r)

	// Clamped to the framebuffer.
	r, ok = projectClip(imgui.Vec4{X: -5, Y: -5, Z: 600, W: 600}, imgui.Vec2{}, scale, 1000, 800)
	assert.True(t, ok)
	assert.Equal(t, sdl.Rect{X: 0, Y: 0, W: 1000, H: 800}, r)

	_, ok = projectClip(imgui.Vec4{X: 50, Y: 50, Z: 50, W: 90}, imgui.Vec2{}, scale, 1000, 1000)
	assert.False(t, ok)
}
