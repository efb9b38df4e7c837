package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/gravityflip/pkg/app"
	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "玩法配置文件路径（默认使用内置 data/gravityflip.yaml）")
	seed       = flag.Uint64("seed", 0, "随机数种子（0 表示使用配置文件或当前时间）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth*config.WindowScale, config.GameWindowHeight*config.WindowScale)
	ebiten.SetWindowTitle("Gravity Flip")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
