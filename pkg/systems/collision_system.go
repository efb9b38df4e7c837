package systems

import (
	"slices"

	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/utils"
)

// EndReason 游戏结束原因
type EndReason int

const (
	// EndNone 本帧未结束
	EndNone EndReason = iota
	// EndEnemy 撞到敌人
	EndEnemy
	// EndOutOfBounds 无砖块支撑且离开画面
	EndOutOfBounds
)

// String 返回结束原因名称（用于日志）
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndEnemy:
		return "enemy"
	case EndOutOfBounds:
		return "out-of-bounds"
	default:
		return "unknown"
	}
}

// Verdict 一帧碰撞判定的结果
type Verdict struct {
	// Supported 小球本帧是否落在砖块上
	Supported bool
	// CoinsCollected 本帧收集的金币数
	CoinsCollected int
	// End 非 EndNone 时游戏结束
	End EndReason
}

// GameOver 本帧是否触发游戏结束
func (v Verdict) GameOver() bool {
	return v.End != EndNone
}

// CollisionSystem 每帧在所有实体移动之后判定小球与障碍物的碰撞
type CollisionSystem struct {
	height float64
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{height: config.GameWindowHeight}
}

// Resolve 执行一帧碰撞判定
//
// 判定顺序：
//  1. 砖块支撑：重叠时清零速度，并把小球贴到重力方向一侧的砖块表面；
//     多个砖块重叠时按遍历顺序最后一个生效
//  2. 金币：倒序遍历，拾取后从集合中移除
//  3. 敌人：任一碰撞立即结束游戏，跳过后续判定
//  4. 出界：无砖块支撑且 Y 超出 [0, height]
func (cs *CollisionSystem) Resolve(w *World) Verdict {
	var verdict Verdict
	ball := w.Ball

	for _, tile := range w.Tiles {
		if !utils.SquareOverlapsRect(ball.X, ball.Y, ball.Radius, tile.X, tile.Y, tile.Width, tile.Height) {
			continue
		}
		verdict.Supported = true
		ball.VelocityY = 0
		if ball.GravityDown() {
			ball.Y = tile.Y - ball.Radius
		} else {
			ball.Y = tile.Bottom() + ball.Radius
		}
	}

	for i := len(w.Coins) - 1; i >= 0; i-- {
		coin := w.Coins[i]
		if coin.Collected {
			continue
		}
		if utils.CirclesOverlap(ball.X, ball.Y, ball.Radius, coin.X, coin.Y, coin.Radius) {
			coin.Collected = true
			verdict.CoinsCollected++
			w.Coins = slices.Delete(w.Coins, i, i+1)
		}
	}

	for _, enemy := range w.Enemies {
		if utils.CirclesOverlap(ball.X, ball.Y, ball.Radius, enemy.X, enemy.Y, enemy.Radius) {
			verdict.End = EndEnemy
			return verdict
		}
	}

	if !verdict.Supported && (ball.Y < 0 || ball.Y > cs.height) {
		verdict.End = EndOutOfBounds
	}

	return verdict
}
