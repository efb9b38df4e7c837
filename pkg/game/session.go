package game

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/entities"
	"github.com/gonewx/gravityflip/pkg/render"
	"github.com/gonewx/gravityflip/pkg/systems"
)

// State is the lifecycle state of a session.
type State int

const (
	// StateNotStarted is the initial state; the field is seeded but frozen.
	StateNotStarted State = iota
	// StateRunning advances the simulation every update.
	StateRunning
	// StateGameOver is terminal until Restart.
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Session 一局游戏的完整状态
//
// Session 是单线程的：Update、Render 以及三个输入动作（Start、Restart、
// FlipGravity）必须由同一个 goroutine 调用。Update 只在 StateRunning 时推进。
type Session struct {
	cfg     *config.GameConfig
	surface render.Surface
	ui      UI

	generator *systems.ObstacleGenerator
	scroll    *systems.ScrollSystem
	collision *systems.CollisionSystem
	renderer  *systems.RenderSystem

	world     systems.World
	score     int
	coinCount int
	state     State
	endReason systems.EndReason
}

// NewRand 根据种子创建随机数源，seed 为 0 时使用当前时间
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSession 创建游戏会话并生成开局障碍区
//
// 参数:
//   - cfg: 游戏配置，nil 时使用默认配置
//   - surface: 渲染目标
//   - ui: 分数、金币和面板输出
//   - rng: 随机数源，nil 时根据 cfg.Seed 创建
//
// 返回:
//   - error: surface 或任一 UI 输出缺失时返回，包装 ErrMissingSurface / ErrMissingSink
func NewSession(cfg *config.GameConfig, surface render.Surface, ui UI, rng *rand.Rand) (*Session, error) {
	if isNil(surface) {
		return nil, ErrMissingSurface
	}
	if err := ui.Validate(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}

	generator := systems.NewObstacleGenerator(cfg, rng)
	s := &Session{
		cfg:       cfg,
		surface:   surface,
		ui:        ui,
		generator: generator,
		scroll:    systems.NewScrollSystem(generator, cfg.ScrollSpeed),
		collision: systems.NewCollisionSystem(),
		renderer:  systems.NewRenderSystem(),
	}
	s.reset()

	s.ui.StartPanel.SetVisible(true)
	s.ui.GameOverPanel.SetVisible(false)

	return s, nil
}

// reset 重新创建小球、清空所有集合并生成开局障碍区
func (s *Session) reset() {
	s.world = systems.World{
		Ball: entities.NewBall(
			s.cfg.Ball.StartX,
			config.GameWindowHeight-s.cfg.Ball.StartOffsetY,
			s.cfg.Ball,
		),
	}
	s.score = 0
	s.coinCount = 0
	s.endReason = systems.EndNone
	s.state = StateNotStarted
	s.generator.SeedField(&s.world)
}

// Start begins a session that has not started yet. It is a no-op in any other state.
func (s *Session) Start() {
	if s.state != StateNotStarted {
		return
	}
	s.ui.StartPanel.SetVisible(false)
	s.state = StateRunning
	log.Printf("[Session] Started")
}

// Restart reinitialises the ball, collections, score and coin count,
// seeds a fresh obstacle field and starts running.
func (s *Session) Restart() {
	s.reset()
	s.ui.GameOverPanel.SetVisible(false)
	s.ui.StartPanel.SetVisible(false)
	s.state = StateRunning
	log.Printf("[Session] Restarted")
}

// FlipGravity inverts the ball's gravity. It applies in every state.
func (s *Session) FlipGravity() {
	s.world.Ball.FlipGravity()
}

// Update 推进一帧模拟
//
// 顺序：小球物理、计分、卷轴与砖块替换、碰撞判定。
// 非 StateRunning 状态下不做任何事。
func (s *Session) Update() {
	if s.state != StateRunning {
		return
	}

	s.world.Ball.Update()
	s.score++

	s.scroll.Update(&s.world)

	verdict := s.collision.Resolve(&s.world)
	s.coinCount += verdict.CoinsCollected
	if verdict.GameOver() {
		s.endGame(verdict.End)
	}
}

// endGame 进入游戏结束状态并输出最终成绩
func (s *Session) endGame(reason systems.EndReason) {
	s.state = StateGameOver
	s.endReason = reason

	s.ui.FinalScore.SetValue(s.score)
	s.ui.FinalCoins.SetValue(s.coinCount)
	s.ui.GameOverPanel.SetVisible(true)

	log.Printf("[Session] Game over (%s): score=%d coins=%d", reason, s.score, s.coinCount)
}

// Render draws the world in layering order and publishes score and coin count.
func (s *Session) Render() {
	s.renderer.Draw(s.surface, &s.world)
	s.ui.Score.SetValue(s.score)
	s.ui.Coins.SetValue(s.coinCount)
}

// Tick runs one frame: Update then Render.
func (s *Session) Tick() {
	s.Update()
	s.Render()
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// IsRunning reports whether the simulation is advancing.
func (s *Session) IsRunning() bool {
	return s.state == StateRunning
}

// IsGameOver reports whether the session has ended.
func (s *Session) IsGameOver() bool {
	return s.state == StateGameOver
}

// Score returns the number of frames survived.
func (s *Session) Score() int {
	return s.score
}

// CoinCount returns the number of coins collected.
func (s *Session) CoinCount() int {
	return s.coinCount
}

// EndReason returns why the last game ended, or EndNone.
func (s *Session) EndReason() systems.EndReason {
	return s.endReason
}

// Ball returns the player's ball.
func (s *Session) Ball() *entities.Ball {
	return s.world.Ball
}

// World returns the live entity collections.
func (s *Session) World() *systems.World {
	return &s.world
}
