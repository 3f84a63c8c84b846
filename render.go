package wander

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image used for solid fills. Created lazily so
// the package can be used without a graphics context.
var whitePixel *ebiten.Image

func fillImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Draw renders every visible node onto screen in tree order. Sprites are
// stretched to their node's Width×Height; alpha multiplies down the tree.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	drawNode(screen, s.root, 0, 0, 1, 1, 1)
}

func drawNode(dst *ebiten.Image, n *Node, px, py, psx, psy, pa float64) {
	if !n.Visible || n.disposed {
		return
	}
	x, y := px+n.X*psx, py+n.Y*psy
	sx, sy := psx*n.ScaleX, psy*n.ScaleY
	alpha := pa * n.Alpha
	if alpha <= 0 {
		return
	}

	img := n.Sprite.Image
	tint := ColorWhite
	if img == nil && n.Fill != nil {
		img = fillImage()
		tint = *n.Fill
	}
	if img != nil && n.Width > 0 && n.Height > 0 {
		b := img.Bounds()
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width*sx/float64(b.Dx()), n.Height*sy/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		op.ColorScale.Scale(float32(tint.R), float32(tint.G), float32(tint.B), float32(tint.A))
		op.ColorScale.ScaleAlpha(float32(alpha))
		dst.DrawImage(img, &op)
	}

	for _, c := range n.children {
		drawNode(dst, c, x, y, sx, sy, alpha)
	}
}
