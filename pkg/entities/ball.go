package entities

import (
	"image/color"

	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/render"
)

var (
	ballColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	trailColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	ballGlow   = render.Glow{Color: color.RGBA{R: 0, G: 255, B: 255, A: 255}, Blur: 10}
)

// trailOpacity 最新一段拖尾的不透明度
const trailOpacity = 0.5

// Point 二维坐标
type Point struct {
	X, Y float64
}

// Ball 玩家控制的小球
//
// 小球横向位置固定，只在纵向受重力影响。
// Gravity 的符号表示方向：正值向下，负值向上。
type Ball struct {
	X, Y      float64
	Radius    float64
	VelocityY float64
	Gravity   float64

	trail    []Point
	maxTrail int
}

// NewBall 在 (x, y) 创建小球，重力默认向下
func NewBall(x, y float64, cfg config.BallConfig) *Ball {
	return &Ball{
		X:        x,
		Y:        y,
		Radius:   cfg.Radius,
		Gravity:  cfg.Gravity,
		trail:    make([]Point, 0, cfg.TrailLength+1),
		maxTrail: cfg.TrailLength,
	}
}

// Update 推进一帧物理：速度累加重力，位置累加速度，然后记录拖尾
func (b *Ball) Update() {
	b.VelocityY += b.Gravity
	b.Y += b.VelocityY

	b.trail = append(b.trail, Point{X: b.X, Y: b.Y})
	if len(b.trail) > b.maxTrail {
		// 从头部丢弃最旧的位置，复用底层数组
		n := copy(b.trail, b.trail[len(b.trail)-b.maxTrail:])
		b.trail = b.trail[:n]
	}
}

// FlipGravity 反转重力方向并清零纵向速度
func (b *Ball) FlipGravity() {
	b.Gravity = -b.Gravity
	b.VelocityY = 0
}

// GravityDown 重力是否向下
func (b *Ball) GravityDown() bool {
	return b.Gravity > 0
}

// Trail 返回拖尾位置，从旧到新
func (b *Ball) Trail() []Point {
	return b.trail
}

// TrailCap 返回拖尾的最大长度
func (b *Ball) TrailCap() int {
	return b.maxTrail
}

// Draw 先绘制拖尾（越新越大越亮），再绘制小球本体
func (b *Ball) Draw(surface render.Surface) {
	n := len(b.trail)
	for i, p := range b.trail {
		alpha := float64(i) / float64(n)
		surface.FillCircle(p.X, p.Y, b.Radius*alpha, render.WithAlpha(trailColor, alpha*trailOpacity), ballGlow)
	}

	surface.FillCircle(b.X, b.Y, b.Radius, ballColor, ballGlow)
}
