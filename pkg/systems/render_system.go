package systems

import (
	"image/color"

	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/render"
)

var gridColor = render.WithAlpha(color.White, 0.05)

// RenderSystem 按固定图层顺序绘制世界
//
// 顺序：清屏、参考网格、砖块、金币、敌人、小球。
type RenderSystem struct {
	width, height float64
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		width:  config.GameWindowWidth,
		height: config.GameWindowHeight,
	}
}

// Draw 绘制一帧
func (rs *RenderSystem) Draw(surface render.Surface, w *World) {
	surface.Clear()
	rs.drawGrid(surface)

	for _, s := range w.Scrollers() {
		s.Draw(surface)
	}

	if w.Ball != nil {
		w.Ball.Draw(surface)
	}
}

// drawGrid 绘制背景参考网格
func (rs *RenderSystem) drawGrid(surface render.Surface) {
	for x := 0.0; x < rs.width; x += config.GridSpacing {
		surface.StrokeLine(x, 0, x, rs.height, config.GridLineWidth, gridColor)
	}
	for y := 0.0; y < rs.height; y += config.GridSpacing {
		surface.StrokeLine(0, y, rs.width, y, config.GridLineWidth, gridColor)
	}
}
