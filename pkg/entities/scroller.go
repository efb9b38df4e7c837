// Package entities 定义游戏中的实体：小球、砖块、金币和敌人
//
// 每个实体持有自己的状态，并负责自己的更新与绘制。
// 砖块、金币和敌人随卷轴移动，实现 Scroller 接口；
// 小球不受卷轴影响，单独由会话驱动。
package entities

import "github.com/gonewx/gravityflip/pkg/render"

// Scroller 随卷轴向左移动的实体
type Scroller interface {
	// Update 推进一帧，speed 为本帧卷轴移动距离
	Update(speed float64)

	// Draw 将实体当前的几何形状绘制到 surface
	Draw(surface render.Surface)
}

// 编译期检查：确保三种卷轴实体都实现了 Scroller
var (
	_ Scroller = (*Tile)(nil)
	_ Scroller = (*Coin)(nil)
	_ Scroller = (*Enemy)(nil)
)
