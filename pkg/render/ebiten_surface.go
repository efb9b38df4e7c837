package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowSteps 光晕由若干层逐渐变淡的外扩图形近似
const glowSteps = 4

// glowAlpha 最内层光晕的不透明度
const glowAlpha = 0.25

// BackgroundColor 画面清屏颜色
var BackgroundColor = color.RGBA{R: 10, G: 10, B: 20, A: 255}

// EbitenSurface 将 Surface 的绘制调用转换为 Ebitengine 的矢量绘制
//
// 每帧绘制前需要通过 SetTarget 指定目标图像（通常是 Draw 回调中的 screen）。
type EbitenSurface struct {
	target    *ebiten.Image
	antialias bool
}

// NewEbitenSurface 创建 Ebitengine 绘制面
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{antialias: true}
}

// SetTarget 设置本帧的目标图像
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Target 返回当前目标图像
func (s *EbitenSurface) Target() *ebiten.Image {
	return s.target
}

// Clear 使用背景色填充整个画面
func (s *EbitenSurface) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(BackgroundColor)
}

// FillRect 绘制填充矩形，光晕在矩形下方逐层外扩
func (s *EbitenSurface) FillRect(x, y, width, height float64, clr color.Color, glow Glow) {
	if s.target == nil {
		return
	}

	if glow.Enabled() {
		for i := glowSteps; i >= 1; i-- {
			spread := glow.Blur * float64(i) / glowSteps
			alpha := glowAlpha * (1 - float64(i-1)/glowSteps)
			vector.DrawFilledRect(s.target,
				float32(x-spread), float32(y-spread),
				float32(width+spread*2), float32(height+spread*2),
				WithAlpha(glow.Color, alpha), s.antialias)
		}
	}

	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(width), float32(height), clr, s.antialias)
}

// FillCircle 绘制填充圆，光晕在圆下方逐层外扩
func (s *EbitenSurface) FillCircle(cx, cy, radius float64, clr color.Color, glow Glow) {
	if s.target == nil || radius <= 0 {
		return
	}

	if glow.Enabled() {
		for i := glowSteps; i >= 1; i-- {
			spread := glow.Blur * float64(i) / glowSteps
			alpha := glowAlpha * (1 - float64(i-1)/glowSteps)
			vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(radius+spread),
				WithAlpha(glow.Color, alpha), s.antialias)
		}
	}

	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(radius), clr, s.antialias)
}

// StrokeLine 绘制线段
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, s.antialias)
}
