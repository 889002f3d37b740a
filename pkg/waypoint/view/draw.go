package view

import (
	"fmt"
	"hash/fnv"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/icon"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal/display"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/link"
)

const groupGap int32 = 8

type textStyle struct {
	color     sdl.Color
	size      int
	underline bool
}

// apply layers a link TextStyle over st. Zero fields keep st's values.
func (st textStyle) apply(ts *link.TextStyle, colorOverride bool) textStyle {
	if ts == nil {
		return st
	}
	if ts.Color != 0 && !colorOverride {
		st.color = display.HexToColor(ts.Color)
	}
	if ts.FontSize > 0 {
		st.size = ts.FontSize
	}
	st.underline = st.underline || ts.Underline
	return st
}

// node measures n and, when render is true, draws it with its top left
// corner at x, y.
func (s *Screen) node(n link.Node, st textStyle, x, y int32, render bool, colorOverride bool) internal.Size {
	switch v := n.(type) {
	case link.Label:
		return s.text(string(v), st, x, y, render)

	case link.Localized:
		return s.text(s.localize(v), st, x, y, render)

	case link.Icon:
		return s.icon(v, x, y, render)

	case link.Group:
		var sizes []internal.Size
		cx := x
		for _, child := range v {
			size := s.node(child, st, cx, y, render, colorOverride)
			sizes = append(sizes, size)
			cx += size.W + groupGap
		}
		return internal.Row(groupGap, sizes...)

	case *link.Text:
		return s.node(v.Children, st.apply(v.Style, colorOverride), x, y, render, colorOverride)

	case *link.Pressable:
		return s.node(v.Child, st, x, y, render, colorOverride)
	}
	return internal.Size{}
}

func (s *Screen) localize(l link.Localized) string {
	if s.localizer == nil {
		return l.MessageID
	}
	return s.localizer.Localize(l.MessageID, l.Data)
}

func (s *Screen) text(text string, st textStyle, x, y int32, render bool) internal.Size {
	if text == "" {
		return internal.Size{}
	}

	label, ok := s.label(text, st)
	if !ok {
		return internal.Size{}
	}

	if render {
		renderer := s.display.Window.Renderer
		renderer.Copy(label.Texture, nil, &sdl.Rect{X: x, Y: y, W: label.W, H: label.H})
		if st.underline {
			renderer.SetDrawColor(st.color.R, st.color.G, st.color.B, st.color.A)
			renderer.FillRect(&sdl.Rect{X: x, Y: y + label.H - 2, W: label.W, H: 2})
		}
	}
	return internal.Size{W: label.W, H: label.H}
}

func (s *Screen) label(text string, st textStyle) (display.LabelTexture, bool) {
	key := fmt.Sprintf("text|%d|%02x%02x%02x|%s", st.size, st.color.R, st.color.G, st.color.B, text)
	if cached, ok := s.display.Labels.Get(key); ok {
		return cached, true
	}

	surface, err := s.font(st.size).RenderUTF8Blended(text, st.color)
	if err != nil {
		s.logger.Error("Failed to render label", "text", text, "error", err)
		return display.LabelTexture{}, false
	}
	defer surface.Free()

	texture, err := s.display.Window.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		s.logger.Error("Failed to create label texture", "text", text, "error", err)
		return display.LabelTexture{}, false
	}

	label := display.LabelTexture{Texture: texture, W: surface.W, H: surface.H}
	s.display.Labels.Set(key, label)
	return label, true
}

func (s *Screen) font(size int) *ttf.Font {
	if size <= 0 || size == s.fontSize {
		return s.display.Font
	}
	if f, ok := s.fonts[size]; ok {
		return f
	}

	f, err := ttf.OpenFont(display.GetTheme().FontPath, size)
	if err != nil {
		s.logger.Warn("Failed to open font size, using default", "size", size, "error", err)
		f = s.display.Font
	}
	s.fonts[size] = f
	return f
}

func (s *Screen) icon(ic link.Icon, x, y int32, render bool) internal.Size {
	size := internal.Size{W: ic.Size, H: ic.Size}
	if !render {
		return size
	}

	h := fnv.New64a()
	h.Write(ic.SVG)
	key := fmt.Sprintf("icon|%d|%x", ic.Size, h.Sum64())

	tex, ok := s.display.Labels.Get(key)
	if !ok {
		img, err := icon.Rasterize(ic.SVG, ic.Size)
		if err != nil {
			s.logger.Error("Failed to rasterize icon", "error", err)
			return size
		}

		surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&img.Pix[0]),
			int32(img.Rect.Dx()), int32(img.Rect.Dy()), 32, int32(img.Stride), uint32(sdl.PIXELFORMAT_ABGR8888))
		if err != nil {
			s.logger.Error("Failed to create icon surface", "error", err)
			return size
		}
		texture, err := s.display.Window.Renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			s.logger.Error("Failed to create icon texture", "error", err)
			return size
		}
		texture.SetBlendMode(sdl.BLENDMODE_BLEND)

		tex = display.LabelTexture{Texture: texture, W: ic.Size, H: ic.Size}
		s.display.Labels.Set(key, tex)
	}

	s.display.Window.Renderer.Copy(tex.Texture, nil, &sdl.Rect{X: x, Y: y, W: tex.W, H: tex.H})
	return size
}

func fill(renderer *sdl.Renderer, c sdl.Color, r internal.Rect) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	renderer.FillRect(&sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
}
