// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/embedded"
	"github.com/gonewx/gravityflip/pkg/game"
	"github.com/gonewx/gravityflip/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的玩法配置文件，为空则使用嵌入的 data/gravityflip.yaml
	ConfigPath string
	// Seed 非 0 时覆盖配置文件中的随机数种子
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
//
// Ebitengine 每个 tick 调用一次 Update，每帧调用一次 Draw，
// 即逐帧驱动“更新后渲染”的游戏循环。
type App struct {
	sceneManager *game.SceneManager
	gameScene    *scenes.GameScene
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 桌面端和移动端调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	if cfg.Seed != 0 {
		gameConfig.Seed = cfg.Seed
	}
	log.Printf("[Config] scrollSpeed=%.1f gravity=%.2f seed=%d",
		gameConfig.ScrollSpeed, gameConfig.Ball.Gravity, gameConfig.Seed)

	gameScene, err := scenes.NewGameScene(gameConfig, nil)
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)
	log.Printf("[App] Game scene ready")

	return &App{
		sceneManager: sceneManager,
		gameScene:    gameScene,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadGameConfig 按优先级加载玩法配置
//
// 优先级：
//  1. path 非空时读取磁盘文件
//  2. 嵌入资源中的 data/gravityflip.yaml
//  3. 内置默认配置（嵌入资源未初始化时）
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载配置文件: %s", path)
		return config.LoadGameConfig(path)
	}

	data, err := embedded.ReadFile(config.DefaultGameConfigPath)
	if errors.Is(err, embedded.ErrNotInitialized) {
		log.Printf("[Config] 嵌入资源未初始化，使用默认配置")
		return config.DefaultGameConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}

	log.Printf("[Config] 加载嵌入配置: %s", config.DefaultGameConfigPath)
	return config.ParseGameConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制窗口缩放时的 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetGameScene 返回游戏主场景
func (a *App) GetGameScene() *scenes.GameScene {
	return a.gameScene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
