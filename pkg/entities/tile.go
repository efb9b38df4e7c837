package entities

import (
	"image/color"

	"github.com/gonewx/gravityflip/pkg/render"
)

var (
	tileColor = color.RGBA{R: 0, G: 51, B: 0, A: 255}
	tileGlow  = render.Glow{Color: color.RGBA{R: 0, G: 255, B: 0, A: 255}, Blur: 5}
)

// Tile 随卷轴移动的平台砖块（轴对齐矩形）
type Tile struct {
	X, Y          float64
	Width, Height float64
}

// NewTile 创建砖块
func NewTile(x, y, width, height float64) *Tile {
	return &Tile{X: x, Y: y, Width: width, Height: height}
}

// Update 向左移动 speed
func (t *Tile) Update(speed float64) {
	t.X -= speed
}

// Right 返回右边缘X坐标
func (t *Tile) Right() float64 {
	return t.X + t.Width
}

// Bottom 返回下边缘Y坐标
func (t *Tile) Bottom() float64 {
	return t.Y + t.Height
}

// Draw 绘制砖块
func (t *Tile) Draw(surface render.Surface) {
	surface.FillRect(t.X, t.Y, t.Width, t.Height, tileColor, tileGlow)
}
