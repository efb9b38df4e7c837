package entities

import (
	"image/color"
	"math"

	"github.com/gonewx/gravityflip/pkg/render"
)

var (
	enemyColor = color.RGBA{R: 255, G: 51, B: 51, A: 255}
	enemyGlow  = render.Glow{Color: color.RGBA{R: 255, G: 0, B: 0, A: 255}, Blur: 10}
)

// Enemy 上下摆动的敌人，碰到即游戏结束
//
// 每帧相位增加 PhaseStep，纵向位移为 Amplitude*sin(相位)。
type Enemy struct {
	X, Y      float64
	Radius    float64
	Phase     float64
	Amplitude float64
	PhaseStep float64
}

// NewEnemy 创建敌人，初始相位为 0
func NewEnemy(x, y, radius, amplitude, phaseStep float64) *Enemy {
	return &Enemy{
		X:         x,
		Y:         y,
		Radius:    radius,
		Amplitude: amplitude,
		PhaseStep: phaseStep,
	}
}

// Update 向左移动 speed，同时推进摆动相位
func (e *Enemy) Update(speed float64) {
	e.X -= speed
	e.Phase += e.PhaseStep
	e.Y += math.Sin(e.Phase) * e.Amplitude
}

// Draw 绘制敌人
func (e *Enemy) Draw(surface render.Surface) {
	surface.FillCircle(e.X, e.Y, e.Radius, enemyColor, enemyGlow)
}
