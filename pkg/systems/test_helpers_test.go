package systems

import (
	"math/rand/v2"

	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/entities"
)

// newTestRand 创建固定种子的随机数源
func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// newTestWorld 创建只包含小球的世界，小球位于默认出生点
func newTestWorld(cfg *config.GameConfig) *World {
	return &World{
		Ball: entities.NewBall(cfg.Ball.StartX, config.GameWindowHeight-cfg.Ball.StartOffsetY, cfg.Ball),
	}
}
