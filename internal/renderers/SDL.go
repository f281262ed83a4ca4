//go:build sdl
// +build sdl

// Package renderers draws Dear ImGui output through an SDL renderer.
package renderers

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLRenderer renders ImGui draw lists with SDL_RenderGeometryRaw.
type SDLRenderer struct {
	fontTexture *sdl.Texture
	sdlRenderer *sdl.Renderer
	log         *slog.Logger
}

// NewSDLRenderer uploads the ImGui font atlas to sdlRenderer.
func NewSDLRenderer(sdlRenderer *sdl.Renderer, log *slog.Logger) (*SDLRenderer, error) {
	if log == nil {
		log = slog.Default()
	}
	renderer := &SDLRenderer{sdlRenderer: sdlRenderer, log: log}
	if err := renderer.createFontsTexture(); err != nil {
		return nil, err
	}
	return renderer, nil
}

// Dispose releases the font texture.
func (renderer *SDLRenderer) Dispose() {
	renderer.destroyFontsTexture()
}

func (renderer *SDLRenderer) destroyFontsTexture() {
	if renderer.fontTexture != nil {
		imgui.CurrentIO().Fonts().SetTextureID(0)
		if err := renderer.fontTexture.Destroy(); err != nil {
			renderer.log.Warn("destroying font texture", "err", err)
		}
		renderer.fontTexture = nil
	}
}

func (renderer *SDLRenderer) createFontsTexture() error {
	io := imgui.CurrentIO()
	image := io.Fonts().TextureDataRGBA32()

	texture, err := renderer.sdlRenderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC,
		int32(image.Width), int32(image.Height))
	if err != nil {
		return fmt.Errorf("create font texture: %w", err)
	}
	pixels := unsafe.Slice((*byte)(image.Pixels), image.Width*image.Height*4)
	if err := texture.Update(nil, pixels, 4*image.Width); err != nil {
		_ = texture.Destroy()
		return fmt.Errorf("upload font texture: %w", err)
	}
	if err := texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		_ = texture.Destroy()
		return fmt.Errorf("font texture blend mode: %w", err)
	}
	renderer.fontTexture = texture
	io.Fonts().SetTextureID(imgui.TextureID(unsafe.Pointer(texture)))
	renderer.log.Debug("font atlas uploaded", "width", image.Width, "height", image.Height)
	return nil
}

// PreRender clears the display to clearColor.
func (renderer *SDLRenderer) PreRender(clearColor [4]float32) {
	renderer.sdlRenderer.SetDrawColor(
		uint8(clearColor[0]*255),
		uint8(clearColor[1]*255),
		uint8(clearColor[2]*255),
		uint8(clearColor[3]*255),
	)
	renderer.sdlRenderer.Clear()
}

// Render draws drawData. Coordinates are scaled from displaySize to
// framebufferSize for high-DPI windows.
func (renderer *SDLRenderer) Render(displaySize [2]float32, framebufferSize [2]float32, drawData imgui.DrawData) {
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 || displaySize[0] <= 0 || displaySize[1] <= 0 {
		return
	}
	clipOff := drawData.DisplayPos()
	clipScale := imgui.Vec2{X: fbWidth / displaySize[0], Y: fbHeight / displaySize[1]}

	lastClipEnabled := renderer.sdlRenderer.IsClipEnabled()
	lastViewport := renderer.sdlRenderer.GetViewport()
	lastClipRect := renderer.sdlRenderer.GetClipRect()

	vtxSize, posVtx, uvVtx, colVtx := imgui.VertexBufferLayout()
	idxSize := imgui.IndexBufferLayout()

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		indexBuffer, _ := list.IndexBuffer()
		vertexCount := vertexBufferSize / vtxSize

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			clip, ok := projectClip(cmd.ClipRect(), clipOff, clipScale, fbWidth, fbHeight)
			if !ok {
				continue
			}
			renderer.sdlRenderer.SetClipRect(&clip)

			tex := (*sdl.Texture)(unsafe.Pointer(cmd.TextureID()))
			vtx := unsafe.Add(vertexBuffer, vtxSize*cmd.VertexOffset())
			idx := unsafe.Add(indexBuffer, idxSize*cmd.IndexOffset())

			err := renderer.sdlRenderer.RenderGeometryRaw(tex,
				(*float32)(unsafe.Add(vtx, posVtx)), vtxSize,
				(*sdl.Color)(unsafe.Add(vtx, colVtx)), vtxSize,
				(*float32)(unsafe.Add(vtx, uvVtx)), vtxSize,
				vertexCount-cmd.VertexOffset(),
				idx, cmd.ElementCount(), idxSize,
			)
			if err != nil {
				renderer.log.Warn("render geometry", "err", err)
			}
		}
	}

	renderer.sdlRenderer.SetViewport(&lastViewport)
	if lastClipEnabled {
		renderer.sdlRenderer.SetClipRect(&lastClipRect)
	} else {
		renderer.sdlRenderer.SetClipRect(nil)
	}
}

// projectClip maps an ImGui clip rectangle into framebuffer space. It
// reports false when nothing remains visible.
func projectClip(rect imgui.Vec4, off, scale imgui.Vec2, fbWidth, fbHeight float32) (sdl.Rect, bool) {
	minX := max((rect.X-off.X)*scale.X, 0)
	minY := max((rect.Y-off.Y)*scale.Y, 0)
	maxX := min((rect.Z-off.X)*scale.X, fbWidth)
	maxY := min((rect.W-off.Y)*scale.Y, fbHeight)
	if maxX <= minX || maxY <= minY {
		return sdl.Rect{}, false
	}
	return sdl.Rect{
		X: int32(minX),
		Y: int32(minY),
		W: int32(maxX - minX),
		H: int32(maxY - minY),
	}, true
}

// PostRender presents the frame.
func (renderer *SDLRenderer) PostRender() {
	renderer.sdlRenderer.Present()
}
