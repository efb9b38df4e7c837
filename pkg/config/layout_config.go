package config

// 布局配置常量
// 本文件定义了游戏画面与界面元素的固定布局参数

// Playfield Configuration (游戏区域配置)
const (
	// GameWindowWidth 是游戏逻辑画面宽度（像素）
	GameWindowWidth = 600

	// GameWindowHeight 是游戏逻辑画面高度（像素）
	GameWindowHeight = 400

	// WindowScale 桌面窗口相对逻辑画面的缩放倍数
	WindowScale = 2

	// GridSpacing 背景参考网格的线间距
	GridSpacing = 40.0

	// GridLineWidth 背景参考网格的线宽
	GridLineWidth = 1.0
)

// HUD Configuration (界面配置)
const (
	// HUDMarginX HUD 文字距离左边缘的距离
	HUDMarginX = 10.0

	// HUDMarginY HUD 文字距离上边缘的距离（需要避开天花板砖块）
	HUDMarginY = 26.0

	// HUDLineHeight HUD 文字行高
	HUDLineHeight = 16.0

	// PanelWidth 开始/结束面板宽度
	PanelWidth = 240.0

	// PanelHeight 开始/结束面板高度
	PanelHeight = 150.0

	// ButtonWidth 面板按钮宽度
	ButtonWidth = 120.0

	// ButtonHeight 面板按钮高度
	ButtonHeight = 32.0

	// ButtonOffsetY 按钮相对面板底部的距离
	ButtonOffsetY = 20.0
)

// GetPanelBounds 返回居中面板的左上角坐标和尺寸
// 返回值：x, y, width, height
func GetPanelBounds() (float64, float64, float64, float64) {
	x := (GameWindowWidth - PanelWidth) / 2
	y := (GameWindowHeight - PanelHeight) / 2
	return x, y, PanelWidth, PanelHeight
}

// GetPanelButtonBounds 返回面板内按钮的左上角坐标和尺寸
// 按钮水平居中，位于面板底部
func GetPanelButtonBounds() (float64, float64, float64, float64) {
	px, py, pw, ph := GetPanelBounds()
	x := px + (pw-ButtonWidth)/2
	y := py + ph - ButtonOffsetY - ButtonHeight
	return x, y, ButtonWidth, ButtonHeight
}
