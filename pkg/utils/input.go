package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPress 一次刚发生的指针按下事件
type PointerPress struct {
	X, Y    int
	IsTouch bool
}

// AppendJustPressedPointers 收集本帧刚按下的所有指针（触摸和鼠标左键）
// 每个新触摸点都会单独返回，与 click/touchstart 事件一一对应
func AppendJustPressedPointers(presses []PointerPress) []PointerPress {
	// 首先检查触摸输入（移动设备）
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		presses = append(presses, PointerPress{X: x, Y: y, IsTouch: true})
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		presses = append(presses, PointerPress{X: x, Y: y})
	}

	return presses
}
