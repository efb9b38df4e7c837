package entities

import (
	"image/color"

	"github.com/gonewx/gravityflip/pkg/render"
)

var (
	coinColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	coinGlow  = render.Glow{Color: coinColor, Blur: 10}
)

// Coin 可收集的金币
type Coin struct {
	X, Y      float64
	Radius    float64
	Collected bool
}

// NewCoin 创建金币
func NewCoin(x, y, radius float64) *Coin {
	return &Coin{X: x, Y: y, Radius: radius}
}

// Update 向左移动 speed
func (c *Coin) Update(speed float64) {
	c.X -= speed
}

// Draw 绘制金币，已收集的金币不绘制
func (c *Coin) Draw(surface render.Surface) {
	if c.Collected {
		return
	}
	surface.FillCircle(c.X, c.Y, c.Radius, coinColor, coinGlow)
}
