package game

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/Faultbox/yarpgp/internal/engine/character"
	"github.com/Faultbox/yarpgp/internal/engine/texture"
	"github.com/Faultbox/yarpgp/internal/game/entity"
)

var (
	bodyColor = color.NRGBA{R: 220, G: 190, B: 140, A: 255}
	faceColor = color.NRGBA{R: 40, G: 30, B: 30, A: 255}
	footColor = color.NRGBA{R: 90, G: 60, B: 40, A: 255}
)

// PlaceholderSheet draws a character sheet in the CharacterSheet layout for
// use when no atlas image is available. Each cell is a body block on the
// magenta key with a mark on the facing side; step frames lift one foot.
func PlaceholderSheet(frameWidth, frameHeight int) *image.NRGBA {
	size := entity.SheetSize(frameWidth, frameHeight)
	img := image.NewNRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.NewUniform(texture.MagentaKey), image.Point{}, draw.Src)

	for _, dir := range character.Directions() {
		for col := 0; col < entity.SheetColumns; col++ {
			cell := image.Rect(0, 0, frameWidth, frameHeight).
				Add(image.Pt(col*frameWidth, int(dir)*frameHeight))
			drawFigure(img, cell, dir, col)
		}
	}
	return img
}

func drawFigure(img *image.NRGBA, cell image.Rectangle, dir character.Direction, col int) {
	w, h := cell.Dx(), cell.Dy()
	body := image.Rect(w/4, h/6, w-w/4, h-h/6).Add(cell.Min)
	fill(img, body, bodyColor)

	// Facing mark: the velocity of dir points at the side the figure looks to.
	v := character.Velocity(dir, 1)
	cx, cy := body.Min.X+body.Dx()/2, body.Min.Y+body.Dy()/3
	mx := cx + int(v.X*float64(body.Dx()/3))
	my := cy + int(v.Y*float64(body.Dy()/4))
	fill(img, image.Rect(mx-1, my-1, mx+1, my+1), faceColor)

	// Feet: column 0 stands, 1 and 2 lift the left or right foot.
	foot := image.Pt(w/6, h/12)
	lift := [3][2]int{{0, 0}, {1, 0}, {0, 1}}[col]
	left := image.Rectangle{Max: foot}.Add(image.Pt(body.Min.X, body.Max.Y-lift[0]*foot.Y))
	right := image.Rectangle{Max: foot}.Add(image.Pt(body.Max.X-foot.X, body.Max.Y-lift[1]*foot.Y))
	fill(img, left.Intersect(cell), footColor)
	fill(img, right.Intersect(cell), footColor)
}

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}
