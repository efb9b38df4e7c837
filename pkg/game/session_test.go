package game

import (
	"errors"
	"testing"

	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/entities"
	"github.com/gonewx/gravityflip/pkg/render"
	"github.com/gonewx/gravityflip/pkg/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSink records the last value written.
type fakeSink struct {
	value  int
	writes int
}

func (f *fakeSink) SetValue(v int) {
	f.value = v
	f.writes++
}

// fakePanel records visibility.
type fakePanel struct {
	visible bool
}

func (f *fakePanel) SetVisible(visible bool) {
	f.visible = visible
}

type testUI struct {
	score, coins, finalScore, finalCoins *fakeSink
	gameOver, start                      *fakePanel
}

func (t *testUI) ui() UI {
	return UI{
		Score:         t.score,
		Coins:         t.coins,
		FinalScore:    t.finalScore,
		FinalCoins:    t.finalCoins,
		GameOverPanel: t.gameOver,
		StartPanel:    t.start,
	}
}

func newTestUI() *testUI {
	return &testUI{
		score:      &fakeSink{},
		coins:      &fakeSink{},
		finalScore: &fakeSink{},
		finalCoins: &fakeSink{},
		gameOver:   &fakePanel{},
		start:      &fakePanel{},
	}
}

func newTestSession(t *testing.T) (*Session, *testUI, *render.Recorder) {
	t.Helper()
	ui := newTestUI()
	rec := render.NewRecorder()
	s, err := NewSession(config.DefaultGameConfig(), rec, ui.ui(), NewRand(1234))
	require.NoError(t, err)
	return s, ui, rec
}

// clearField 用一组横跨整个画面的超长砖块替换障碍区，小球可以一直停在地面上
func clearField(s *Session) {
	w := s.World()
	w.Tiles = []*entities.Tile{
		entities.NewTile(-1000, 380, 100000, 20),
		entities.NewTile(-1000, 0, 100000, 20),
	}
	w.Coins = nil
	w.Enemies = nil
}

func TestNewSessionRequiresCollaborators(t *testing.T) {
	ui := newTestUI()

	_, err := NewSession(nil, nil, ui.ui(), nil)
	assert.True(t, errors.Is(err, ErrMissingSurface))

	missing := ui.ui()
	missing.FinalCoins = nil
	_, err = NewSession(nil, render.NewRecorder(), missing, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSink))
	assert.Contains(t, err.Error(), "final coins")

	bad := config.DefaultGameConfig()
	bad.ScrollSpeed = 0
	_, err = NewSession(bad, render.NewRecorder(), ui.ui(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid game config")
}

func TestNewSessionRejectsTypedNilCollaborators(t *testing.T) {
	ui := newTestUI()

	var rec *render.Recorder
	_, err := NewSession(nil, rec, ui.ui(), nil)
	assert.True(t, errors.Is(err, ErrMissingSurface))

	tests := []struct {
		name   string
		mutate func(*UI)
	}{
		{"score", func(u *UI) { u.Score = (*fakeSink)(nil) }},
		{"final score", func(u *UI) { u.FinalScore = (*fakeSink)(nil) }},
		{"start panel", func(u *UI) { u.StartPanel = (*fakePanel)(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := ui.ui()
			tt.mutate(&u)

			_, err := NewSession(nil, render.NewRecorder(), u, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingSink))
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestNewSessionInitialState(t *testing.T) {
	s, ui, _ := newTestSession(t)

	assert.Equal(t, StateNotStarted, s.State())
	assert.False(t, s.IsRunning())
	assert.False(t, s.IsGameOver())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.CoinCount())
	assert.True(t, ui.start.visible)
	assert.False(t, ui.gameOver.visible)

	assert.Len(t, s.World().Tiles, 10)
	assert.Equal(t, 100.0, s.Ball().X)
	assert.Equal(t, 350.0, s.Ball().Y)
}

func TestUpdateIsInertUntilStarted(t *testing.T) {
	s, _, _ := newTestSession(t)
	firstX := s.World().Tiles[0].X

	s.Update()
	s.Update()

	assert.Zero(t, s.Score())
	assert.Equal(t, 350.0, s.Ball().Y)
	assert.Equal(t, firstX, s.World().Tiles[0].X)
}

func TestFlipGravityAppliesInAnyState(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.FlipGravity()
	assert.False(t, s.Ball().GravityDown())

	s.Start()
	s.FlipGravity()
	assert.True(t, s.Ball().GravityDown())
}

func TestStartTransitions(t *testing.T) {
	s, ui, _ := newTestSession(t)

	s.Start()
	assert.Equal(t, StateRunning, s.State())
	assert.False(t, ui.start.visible)

	// 运行中再次 Start 不影响状态
	s.Update()
	s.Start()
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, 1, s.Score())
}

func TestScoreCountsFramesSurvived(t *testing.T) {
	s, _, _ := newTestSession(t)
	clearField(s)
	s.Start()

	const n = 500
	for i := 0; i < n; i++ {
		s.Update()
		require.True(t, s.IsRunning(), "frame %d", i)
		require.LessOrEqual(t, len(s.Ball().Trail()), 10)
	}

	assert.Equal(t, n, s.Score())
	// 小球停在地面砖块上
	assert.Equal(t, 365.0, s.Ball().Y)
}

func TestFallingOffScreenEndsGame(t *testing.T) {
	s, ui, _ := newTestSession(t)
	s.Start()

	for i := 0; i < 100 && s.IsRunning(); i++ {
		s.Update()
	}

	require.True(t, s.IsGameOver())
	assert.Equal(t, systems.EndOutOfBounds, s.EndReason())
	// 0.2*n(n+1)/2 > 50 在第 22 帧首次成立
	assert.Equal(t, 22, s.Score())
	assert.Equal(t, 22, ui.finalScore.value)
	assert.True(t, ui.gameOver.visible)
}

func TestEnemyCollisionEndsGame(t *testing.T) {
	s, ui, _ := newTestSession(t)
	clearField(s)
	ball := s.Ball()
	// 卷轴移动 2 之后圆心距离约为 5，半径和为 27
	s.World().Enemies = []*entities.Enemy{entities.NewEnemy(ball.X+7, ball.Y, 12, 2, 0.05)}
	s.Start()

	s.Update()

	assert.Equal(t, StateGameOver, s.State())
	assert.False(t, s.IsRunning())
	assert.Equal(t, systems.EndEnemy, s.EndReason())
	assert.Equal(t, 1, ui.finalScore.value)
	assert.Equal(t, 0, ui.finalCoins.value)
	assert.True(t, ui.gameOver.visible)

	// 游戏结束后 Update 不再推进，Start 也无效
	s.Update()
	s.Start()
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, StateGameOver, s.State())
}

func TestCoinPickupIncrementsCount(t *testing.T) {
	s, ui, _ := newTestSession(t)
	clearField(s)
	ball := s.Ball()
	s.World().Coins = []*entities.Coin{
		entities.NewCoin(ball.X+2, ball.Y, 10),
		entities.NewCoin(ball.X+300, ball.Y, 10),
	}
	s.Start()

	s.Update()
	s.Render()

	assert.Equal(t, 1, s.CoinCount())
	assert.Len(t, s.World().Coins, 1)
	assert.Equal(t, 1, ui.coins.value)
	assert.Equal(t, 1, ui.score.value)
}

func TestRestartReinitialises(t *testing.T) {
	s, ui, _ := newTestSession(t)
	clearField(s)
	s.World().Coins = []*entities.Coin{entities.NewCoin(s.Ball().X+2, s.Ball().Y, 10)}
	s.Start()
	s.Update()
	s.FlipGravity()
	require.Equal(t, 1, s.CoinCount())

	oldBall := s.Ball()
	s.Restart()

	assert.Equal(t, StateRunning, s.State())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.CoinCount())
	assert.Equal(t, systems.EndNone, s.EndReason())
	assert.NotSame(t, oldBall, s.Ball())
	assert.True(t, s.Ball().GravityDown())
	assert.Empty(t, s.Ball().Trail())
	assert.Len(t, s.World().Tiles, 10)
	assert.Equal(t, 600.0, s.World().Tiles[0].X)
	assert.False(t, ui.gameOver.visible)
	assert.False(t, ui.start.visible)
}

func TestUpdateReplacesLeadingPair(t *testing.T) {
	s, _, _ := newTestSession(t)
	w := s.World()
	w.Tiles[0].X = -w.Tiles[0].Width + 1
	w.Tiles[1].X = w.Tiles[0].X
	second := w.Tiles[2]
	// 让小球停在一块地面上，避免出界
	w.Tiles = append(w.Tiles, entities.NewTile(0, 380, 100000, 20), entities.NewTile(0, 0, 100000, 20))
	before := len(w.Tiles)
	s.Start()

	s.Update()

	require.True(t, s.IsRunning())
	assert.Len(t, w.Tiles, before)
	assert.Same(t, second, w.Tiles[0])
}

func TestRenderPublishesAndDraws(t *testing.T) {
	s, ui, rec := newTestSession(t)
	clearField(s)
	s.Start()

	s.Tick()
	s.Tick()

	assert.Equal(t, 2, ui.score.value)
	assert.Equal(t, 2, ui.score.writes)
	assert.Equal(t, 0, ui.coins.value)

	ops := rec.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, render.OpClear, ops[0].Kind)
	assert.Equal(t, 2, rec.Count(render.OpClear))
}

func TestSessionsWithSameSeedMatch(t *testing.T) {
	ui := newTestUI()
	a, err := NewSession(nil, render.NewRecorder(), ui.ui(), NewRand(77))
	require.NoError(t, err)
	b, err := NewSession(nil, render.NewRecorder(), ui.ui(), NewRand(77))
	require.NoError(t, err)

	require.Equal(t, len(a.World().Tiles), len(b.World().Tiles))
	for i := range a.World().Tiles {
		assert.Equal(t, a.World().Tiles[i].Width, b.World().Tiles[i].Width)
	}
	assert.Equal(t, len(a.World().Coins), len(b.World().Coins))
	assert.Equal(t, len(a.World().Enemies), len(b.World().Enemies))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not-started", StateNotStarted.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "game-over", StateGameOver.String())
	assert.Equal(t, "unknown", State(9).String())
}
