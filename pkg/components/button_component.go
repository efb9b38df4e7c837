package components

import "github.com/gonewx/gravityflip/pkg/utils"

// ButtonComponent 矩形按钮
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string

	// X, Y 左上角坐标；Width, Height 尺寸
	X, Y          float64
	Width, Height float64

	// OnClick 点击回调函数
	OnClick func()
}

// Contains 判断点是否落在按钮内
func (b *ButtonComponent) Contains(x, y float64) bool {
	return utils.PointInRect(x, y, b.X, b.Y, b.Width, b.Height)
}

// Click 触发点击回调
func (b *ButtonComponent) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}
