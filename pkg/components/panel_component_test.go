package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelText(t *testing.T) {
	l := NewLabel("Score", 10, 26)
	l.SetValue(42)
	assert.Equal(t, "Score: 42", l.Text())
}

func TestPanelHandleClick(t *testing.T) {
	clicks := 0
	p := &PanelComponent{
		Button: &ButtonComponent{
			X: 100, Y: 100, Width: 50, Height: 20,
			OnClick: func() { clicks++ },
		},
	}

	// 隐藏的面板不响应
	assert.False(t, p.HandleClick(110, 110))
	assert.Zero(t, clicks)

	p.SetVisible(true)
	assert.False(t, p.HandleClick(10, 10))
	assert.True(t, p.HandleClick(110, 110))
	assert.Equal(t, 1, clicks)

	// 右下边界不属于按钮
	assert.False(t, p.HandleClick(150, 110))
}

func TestButtonWithoutCallback(t *testing.T) {
	b := &ButtonComponent{Width: 10, Height: 10}
	assert.True(t, b.Contains(0, 0))
	assert.NotPanics(t, b.Click)
}
