// Package components 定义界面元素的数据结构
//
// 组件只保存数据和简单的几何判定，绘制由场景负责。
package components

import "fmt"

// LabelComponent 显示一个整数值的文本标签，实现 game.ValueSink
type LabelComponent struct {
	// Caption 数值前的说明文字（如 "Score"）
	Caption string
	// Value 当前显示的数值
	Value int
	// X, Y 文字左上角坐标
	X, Y float64
}

// NewLabel 创建标签
func NewLabel(caption string, x, y float64) *LabelComponent {
	return &LabelComponent{Caption: caption, X: x, Y: y}
}

// SetValue 更新显示的数值
func (l *LabelComponent) SetValue(v int) {
	l.Value = v
}

// Text 返回要绘制的完整文字
func (l *LabelComponent) Text() string {
	return fmt.Sprintf("%s: %d", l.Caption, l.Value)
}
