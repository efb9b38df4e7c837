package scenes

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/gravityflip/pkg/components"
	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/game"
	"github.com/gonewx/gravityflip/pkg/render"
	"github.com/gonewx/gravityflip/pkg/utils"
)

var (
	hudTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	panelColor      = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	panelGlow       = render.Glow{Color: color.RGBA{R: 0, G: 255, B: 255, A: 255}, Blur: 6}
	buttonColor     = color.RGBA{R: 0, G: 120, B: 120, A: 255}
	buttonTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// GameScene 游戏主场景
//
// 负责三件事：
//   - 把指针输入分发给会话的三个动作（开始、重新开始、翻转重力）
//   - 每帧驱动会话的 Update 与 Render
//   - 绘制 HUD 文字以及开始/结束面板
type GameScene struct {
	session *game.Session
	surface *render.EbitenSurface
	face    *text.GoXFace

	scoreLabel *components.LabelComponent
	coinLabel  *components.LabelComponent

	finalScoreLabel *components.LabelComponent
	finalCoinLabel  *components.LabelComponent

	startPanel    *components.PanelComponent
	gameOverPanel *components.PanelComponent

	presses []utils.PointerPress
}

// NewGameScene 创建游戏场景及其会话
//
// 参数:
//   - cfg: 游戏配置
//   - rng: 随机数源，nil 时根据 cfg.Seed 创建
func NewGameScene(cfg *config.GameConfig, rng *rand.Rand) (*GameScene, error) {
	gs := &GameScene{
		surface: render.NewEbitenSurface(),
		face:    text.NewGoXFace(basicfont.Face7x13),

		scoreLabel: components.NewLabel("Score", config.HUDMarginX, config.HUDMarginY),
		coinLabel:  components.NewLabel("Coins", config.HUDMarginX, config.HUDMarginY+config.HUDLineHeight),
	}

	px, py, pw, ph := config.GetPanelBounds()
	bx, by, bw, bh := config.GetPanelButtonBounds()

	gs.finalScoreLabel = components.NewLabel("Final score", px+pw/2, py+50)
	gs.finalCoinLabel = components.NewLabel("Coins", px+pw/2, py+50+config.HUDLineHeight)

	hint := "Click anywhere to flip gravity"
	if utils.IsMobile() {
		hint = "Tap anywhere to flip gravity"
	}

	gs.startPanel = &components.PanelComponent{
		Title: "GRAVITY FLIP",
		Hint:  hint,
		X:     px, Y: py, Width: pw, Height: ph,
		Button: &components.ButtonComponent{
			Text: "START",
			X:    bx, Y: by, Width: bw, Height: bh,
		},
	}
	gs.gameOverPanel = &components.PanelComponent{
		Title:  "GAME OVER",
		X:      px, Y: py, Width: pw, Height: ph,
		Labels: []*components.LabelComponent{gs.finalScoreLabel, gs.finalCoinLabel},
		Button: &components.ButtonComponent{
			Text: "RESTART",
			X:    bx, Y: by, Width: bw, Height: bh,
		},
	}

	session, err := game.NewSession(cfg, gs.surface, game.UI{
		Score:         gs.scoreLabel,
		Coins:         gs.coinLabel,
		FinalScore:    gs.finalScoreLabel,
		FinalCoins:    gs.finalCoinLabel,
		GameOverPanel: gs.gameOverPanel,
		StartPanel:    gs.startPanel,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	gs.session = session

	gs.startPanel.Button.OnClick = session.Start
	gs.gameOverPanel.Button.OnClick = session.Restart

	return gs, nil
}

// Session 返回场景驱动的会话
func (gs *GameScene) Session() *game.Session {
	return gs.session
}

// HandlePress 处理一次指针按下
//
// 先触发可见面板上被点中的按钮，然后无论点在哪里都翻转重力。
// 点击重新开始时，翻转作用在新创建的小球上。
func (gs *GameScene) HandlePress(x, y float64) {
	if !gs.startPanel.HandleClick(x, y) {
		gs.gameOverPanel.HandleClick(x, y)
	}
	gs.session.FlipGravity()
}

// Update 先分发本帧输入，再推进一帧模拟
func (gs *GameScene) Update(deltaTime float64) {
	gs.presses = utils.AppendJustPressedPointers(gs.presses[:0])
	for _, p := range gs.presses {
		gs.HandlePress(float64(p.X), float64(p.Y))
	}

	gs.session.Update()
}

// Draw 绘制世界、HUD 和面板
func (gs *GameScene) Draw(screen *ebiten.Image) {
	gs.surface.SetTarget(screen)
	gs.session.Render()

	gs.drawLabel(screen, gs.scoreLabel, text.AlignStart)
	gs.drawLabel(screen, gs.coinLabel, text.AlignStart)

	gs.drawPanel(screen, gs.startPanel)
	gs.drawPanel(screen, gs.gameOverPanel)
}

// drawPanel 绘制面板背景、标题、数值行和按钮
func (gs *GameScene) drawPanel(screen *ebiten.Image, p *components.PanelComponent) {
	if !p.Visible {
		return
	}

	gs.surface.FillRect(p.X, p.Y, p.Width, p.Height, panelColor, panelGlow)
	gs.drawText(screen, p.Title, p.X+p.Width/2, p.Y+20, hudTextColor, text.AlignCenter)
	if p.Hint != "" {
		gs.drawText(screen, p.Hint, p.X+p.Width/2, p.Y+50, hudTextColor, text.AlignCenter)
	}

	for _, l := range p.Labels {
		gs.drawLabel(screen, l, text.AlignCenter)
	}

	if b := p.Button; b != nil {
		gs.surface.FillRect(b.X, b.Y, b.Width, b.Height, buttonColor, render.Glow{})
		textY := b.Y + (b.Height-float64(gs.face.Metrics().HAscent))/2
		gs.drawText(screen, b.Text, b.X+b.Width/2, textY, buttonTextColor, text.AlignCenter)
	}
}

func (gs *GameScene) drawLabel(screen *ebiten.Image, l *components.LabelComponent, align text.Align) {
	gs.drawText(screen, l.Text(), l.X, l.Y, hudTextColor, align)
}

func (gs *GameScene) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, gs.face, op)
}
