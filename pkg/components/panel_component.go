package components

// PanelComponent 覆盖在游戏画面上的面板（开始面板、游戏结束面板），实现 game.Panel
type PanelComponent struct {
	// Title 面板标题
	Title string

	// X, Y 左上角坐标；Width, Height 尺寸
	X, Y          float64
	Width, Height float64

	// Hint 标题下方的提示文字，可为空
	Hint string

	// Labels 标题下方的数值行（如最终得分）
	Labels []*LabelComponent

	// Button 面板底部的按钮
	Button *ButtonComponent

	// Visible 是否显示；隐藏的面板不响应点击
	Visible bool
}

// SetVisible 显示或隐藏面板
func (p *PanelComponent) SetVisible(visible bool) {
	p.Visible = visible
}

// HandleClick 处理一次点击
// 面板可见且点中按钮时触发按钮回调并返回 true（事件被消费）
func (p *PanelComponent) HandleClick(x, y float64) bool {
	if !p.Visible || p.Button == nil || !p.Button.Contains(x, y) {
		return false
	}
	p.Button.Click()
	return true
}
