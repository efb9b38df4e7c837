// simulate 无窗口运行游戏会话，用于冒烟测试与调参
//
// 用法:
//
//	go run ./cmd/simulate -seed 42 -frames 3600
//	go run ./cmd/simulate -config data/gravityflip.yaml -fps 60 -verbose
//
// 自动驾驶策略：小球越过上下警戒线时翻转重力。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/game"
	"github.com/gonewx/gravityflip/pkg/render"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "玩法配置文件路径（默认使用内置默认值）")
	seed       = flag.Uint64("seed", 1, "随机数种子")
	frames     = flag.Int("frames", 3600, "最多模拟的帧数（0 表示不限）")
	fps        = flag.Int("fps", 0, "模拟帧率（0 表示尽快运行）")
	margin     = flag.Float64("margin", 80, "自动翻转的警戒线距离上下边缘的距离")
)

// valueSink 保存数值，供结束时输出
type valueSink struct{ value int }

func (v *valueSink) SetValue(n int) { v.value = n }

// panel 记录面板可见性变化
type panel struct {
	name    string
	visible bool
}

func (p *panel) SetVisible(visible bool) {
	if p.visible != visible {
		log.Printf("[Simulate] %s panel visible=%v", p.name, visible)
	}
	p.visible = visible
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Seed = *seed

	score, coins := &valueSink{}, &valueSink{}
	finalScore, finalCoins := &valueSink{}, &valueSink{}
	recorder := render.NewRecorder()

	session, err := game.NewSession(cfg, recorder, game.UI{
		Score:         score,
		Coins:         coins,
		FinalScore:    finalScore,
		FinalCoins:    finalCoins,
		GameOverPanel: &panel{name: "game over"},
		StartPanel:    &panel{name: "start"},
	}, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "会话创建失败: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var interval time.Duration
	if *fps > 0 {
		interval = time.Second / time.Duration(*fps)
	}

	flips := 0
	loop := &game.FixedRateLoop{
		Interval:       interval,
		MaxFrames:      *frames,
		StopOnGameOver: true,
		BeforeTick: func(frame int) {
			// 每帧只保留最近一帧的绘制记录
			recorder.Reset()
			if frame == 0 {
				session.Start()
			}
			ball := session.Ball()
			if (ball.GravityDown() && ball.Y > config.GameWindowHeight-*margin) ||
				(!ball.GravityDown() && ball.Y < *margin) {
				session.FlipGravity()
				flips++
			}
		},
	}

	start := time.Now()
	ran, err := loop.Run(ctx, session)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("中断: %v\n", err)
	}

	fmt.Printf("帧数: %d (%.1fms)\n", ran, float64(elapsed.Microseconds())/1000)
	fmt.Printf("状态: %s\n", session.State())
	fmt.Printf("翻转次数: %d\n", flips)
	fmt.Printf("绘制调用(最后一帧): %d\n", len(recorder.Ops()))
	if session.IsGameOver() {
		fmt.Printf("结束原因: %s\n", session.EndReason())
		fmt.Printf("最终得分: %d  金币: %d\n", finalScore.value, finalCoins.value)
	} else {
		fmt.Printf("得分: %d  金币: %d\n", score.value, coins.value)
	}
}
