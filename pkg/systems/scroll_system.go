package systems

import (
	"math"
	"slices"

	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/entities"
)

// ScrollSystem 推进卷轴并维护连续的障碍区
//
// 每帧所有卷轴实体左移 speed；最靠左的一组砖块完全离开画面后，
// 移除该组并在右侧生成一组新砖块，使砖块组数保持不变。
type ScrollSystem struct {
	generator *ObstacleGenerator
	speed     float64
	width     float64
}

// NewScrollSystem 创建卷轴系统
func NewScrollSystem(generator *ObstacleGenerator, speed float64) *ScrollSystem {
	return &ScrollSystem{
		generator: generator,
		speed:     speed,
		width:     config.GameWindowWidth,
	}
}

// Speed 返回每帧卷轴速度
func (s *ScrollSystem) Speed() float64 {
	return s.speed
}

// Update 推进一帧卷轴
//
// 返回:
//   - bool: 本帧是否替换了一组砖块
func (s *ScrollSystem) Update(w *World) bool {
	for _, t := range w.Tiles {
		t.Update(s.speed)
	}
	for _, c := range w.Coins {
		c.Update(s.speed)
	}
	for _, e := range w.Enemies {
		e.Update(s.speed)
	}

	floor, _, ok := w.LeadingPair()
	if !ok || floor.Right() >= 0 {
		return false
	}

	w.RemoveLeadingPair()
	w.AddPair(s.generator.GenerateTilePair(s.nextPairX(w)))
	pruneOffscreen(w)
	return true
}

// nextPairX 计算新砖块组的X坐标
// 新组出现在画面右边缘，若最新一组尚未留出间距则继续向右推
func (s *ScrollSystem) nextPairX(w *World) float64 {
	x := s.width
	if _, ceiling, ok := w.TrailingPair(); ok {
		x = math.Max(x, ceiling.Right()+w.TrailingGap())
	}
	return x
}

// pruneOffscreen 清理已完全离开画面左侧的金币和敌人
// 它们不会再被绘制到画面内，也不可能再与小球接触
func pruneOffscreen(w *World) {
	w.Coins = slices.DeleteFunc(w.Coins, func(c *entities.Coin) bool {
		return c.X+c.Radius < 0
	})
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e *entities.Enemy) bool {
		return e.X+e.Radius < 0
	})
}
