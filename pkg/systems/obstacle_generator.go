package systems

import (
	"log"
	"math/rand/v2"

	"github.com/gonewx/gravityflip/pkg/config"
	"github.com/gonewx/gravityflip/pkg/entities"
)

// TilePair 一次生成的结果：一组地面/天花板砖块以及附带的金币和敌人
type TilePair struct {
	Floor   *entities.Tile
	Ceiling *entities.Tile

	// Coins 为空或恰好两枚（地面侧一枚，天花板侧一枚）
	Coins []*entities.Coin

	// Enemy 可能为 nil
	Enemy *entities.Enemy

	// Gap 本组右边缘到下一组左边缘的最小间距
	Gap float64
}

// ObstacleGenerator 程序化生成障碍物
//
// 所有随机数都来自注入的 rng，相同种子得到相同的障碍序列。
type ObstacleGenerator struct {
	cfg    *config.GameConfig
	rng    *rand.Rand
	width  float64
	height float64
}

// NewObstacleGenerator 创建障碍物生成器
//
// 参数:
//   - cfg: 游戏配置（砖块尺寸、生成概率等）
//   - rng: 随机数源
func NewObstacleGenerator(cfg *config.GameConfig, rng *rand.Rand) *ObstacleGenerator {
	return &ObstacleGenerator{
		cfg:    cfg,
		rng:    rng,
		width:  config.GameWindowWidth,
		height: config.GameWindowHeight,
	}
}

// GenerateTilePair 在 x 处生成一组砖块
//
// 随机数抽取顺序固定：宽度、间距、金币判定、敌人判定、敌人所在侧。
// 金币与敌人的判定互相独立。
func (g *ObstacleGenerator) GenerateTilePair(x float64) TilePair {
	tileHeight := g.cfg.Tile.Height
	tileWidth := g.cfg.Tile.Width.Lerp(g.rng.Float64())
	gap := g.cfg.Tile.Gap.Lerp(g.rng.Float64())

	pair := TilePair{
		Floor:   entities.NewTile(x, g.height-tileHeight, tileWidth, tileHeight),
		Ceiling: entities.NewTile(x, 0, tileWidth, tileHeight),
		Gap:     gap,
	}

	centerX := x + tileWidth/2

	if g.rng.Float64() < g.cfg.Coin.SpawnChance {
		offset := tileHeight + g.cfg.Coin.SurfaceOffset
		pair.Coins = []*entities.Coin{
			entities.NewCoin(centerX, g.height-offset, g.cfg.Coin.Radius),
			entities.NewCoin(centerX, offset, g.cfg.Coin.Radius),
		}
	}

	if g.rng.Float64() < g.cfg.Enemy.SpawnChance {
		offset := tileHeight + g.cfg.Enemy.SurfaceOffset
		y := g.height - offset
		if g.rng.Float64() < 0.5 {
			y = offset
		}
		pair.Enemy = entities.NewEnemy(centerX, y, g.cfg.Enemy.Radius, g.cfg.Enemy.Amplitude, g.cfg.Enemy.PhaseStep)
	}

	return pair
}

// SeedField 生成开局障碍区：从画面右边缘开始，按固定间隔排列
func (g *ObstacleGenerator) SeedField(w *World) {
	for i := 0; i < g.cfg.Field.InitialPairs; i++ {
		x := g.width + float64(i)*g.cfg.Field.InitialSpacing
		w.AddPair(g.GenerateTilePair(x))
	}
	log.Printf("[Generator] Seeded %d tile pairs, %d coins, %d enemies",
		w.PairCount(), len(w.Coins), len(w.Enemies))
}
