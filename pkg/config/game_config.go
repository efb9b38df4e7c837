package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 嵌入资源中默认配置文件的路径
const DefaultGameConfigPath = "data/gravityflip.yaml"

// GameConfig 游戏玩法配置
//
// 包含小球物理、砖块生成、金币与敌人生成概率以及卷轴速度。
// 未在 YAML 中出现的字段保留 DefaultGameConfig() 的默认值。
//
// 配置文件位置: data/gravityflip.yaml
type GameConfig struct {
	// Seed 随机数种子，0 表示使用当前时间
	Seed uint64 `yaml:"seed"`

	// ScrollSpeed 每帧卷轴移动距离
	ScrollSpeed float64 `yaml:"scrollSpeed"`

	Ball  BallConfig  `yaml:"ball"`
	Tile  TileConfig  `yaml:"tile"`
	Coin  CoinConfig  `yaml:"coin"`
	Enemy EnemyConfig `yaml:"enemy"`
	Field FieldConfig `yaml:"field"`
}

// BallConfig 小球配置
type BallConfig struct {
	// StartX 出生点X坐标
	StartX float64 `yaml:"startX"`

	// StartOffsetY 出生点距离画面底部的距离
	StartOffsetY float64 `yaml:"startOffsetY"`

	// Radius 小球半径
	Radius float64 `yaml:"radius"`

	// Gravity 每帧重力加速度（正值向下）
	Gravity float64 `yaml:"gravity"`

	// TrailLength 拖尾最多保留的历史位置数
	TrailLength int `yaml:"trailLength"`
}

// TileConfig 砖块配置
type TileConfig struct {
	// Height 砖块高度
	Height float64 `yaml:"height"`

	// Width 砖块宽度范围 [min, max)
	Width Range `yaml:"width"`

	// Gap 一组砖块之后到下一组砖块的间距范围 [min, max)
	Gap Range `yaml:"gap"`
}

// CoinConfig 金币配置
type CoinConfig struct {
	// Radius 金币半径
	Radius float64 `yaml:"radius"`

	// SpawnChance 每组砖块生成一对金币的概率
	SpawnChance float64 `yaml:"spawnChance"`

	// SurfaceOffset 金币中心距离砖块表面的距离
	SurfaceOffset float64 `yaml:"surfaceOffset"`
}

// EnemyConfig 敌人配置
type EnemyConfig struct {
	// Radius 敌人半径
	Radius float64 `yaml:"radius"`

	// SpawnChance 每组砖块生成一个敌人的概率
	SpawnChance float64 `yaml:"spawnChance"`

	// SurfaceOffset 敌人出生点距离砖块表面的距离
	SurfaceOffset float64 `yaml:"surfaceOffset"`

	// Amplitude 每帧纵向摆动幅度
	Amplitude float64 `yaml:"amplitude"`

	// PhaseStep 每帧相位增量（弧度）
	PhaseStep float64 `yaml:"phaseStep"`
}

// FieldConfig 初始障碍区配置
type FieldConfig struct {
	// InitialPairs 开局生成的砖块组数
	InitialPairs int `yaml:"initialPairs"`

	// InitialSpacing 开局砖块组之间的固定间隔
	InitialSpacing float64 `yaml:"initialSpacing"`
}

// Range 半开区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp 将 [0,1) 内的 t 映射到区间内
func (r Range) Lerp(t float64) float64 {
	return r.Min + t*(r.Max-r.Min)
}

// DefaultGameConfig 返回内置默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		ScrollSpeed: 2,
		Ball: BallConfig{
			StartX:       100,
			StartOffsetY: 50,
			Radius:       15,
			Gravity:      0.2,
			TrailLength:  10,
		},
		Tile: TileConfig{
			Height: 20,
			Width:  Range{Min: 100, Max: 140},
			Gap:    Range{Min: 150, Max: 250},
		},
		Coin: CoinConfig{
			Radius:        10,
			SpawnChance:   0.5,
			SurfaceOffset: 25,
		},
		Enemy: EnemyConfig{
			Radius:        12,
			SpawnChance:   0.4,
			SurfaceOffset: 40,
			Amplitude:     2,
			PhaseStep:     0.05,
		},
		Field: FieldConfig{
			InitialPairs:   5,
			InitialSpacing: 220,
		},
	}
}

// ParseGameConfig 解析 YAML 格式的游戏配置
//
// 解析以默认配置为基础，YAML 中的字段覆盖默认值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *GameConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从磁盘加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/gravityflip.yaml"）
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
//
// 检查内容：
//   - 尺寸、半径、速度为正
//   - 区间非空（Min < Max）且宽度下限为正
//   - 概率位于 [0, 1]
//   - 砖块、金币和敌人都能放进画面
//   - 小球出生点位于画面内
func (c *GameConfig) Validate() error {
	if c.ScrollSpeed <= 0 {
		return fmt.Errorf("scrollSpeed must be > 0, got %.2f", c.ScrollSpeed)
	}

	if c.Ball.Radius <= 0 {
		return fmt.Errorf("ball radius must be > 0, got %.2f", c.Ball.Radius)
	}
	if c.Ball.Gravity <= 0 {
		return fmt.Errorf("ball gravity must be > 0, got %.2f", c.Ball.Gravity)
	}
	if c.Ball.TrailLength < 1 {
		return fmt.Errorf("ball trailLength must be >= 1, got %d", c.Ball.TrailLength)
	}
	if c.Ball.StartX <= 0 || c.Ball.StartX >= GameWindowWidth {
		return fmt.Errorf("ball startX must be within (0, %d), got %.2f", GameWindowWidth, c.Ball.StartX)
	}
	if c.Ball.StartOffsetY <= 0 || c.Ball.StartOffsetY >= GameWindowHeight {
		return fmt.Errorf("ball startOffsetY must be within (0, %d), got %.2f", GameWindowHeight, c.Ball.StartOffsetY)
	}

	if c.Tile.Height <= 0 || c.Tile.Height*2 >= GameWindowHeight {
		return fmt.Errorf("tile height out of range: %.2f", c.Tile.Height)
	}
	if err := c.Tile.Width.validate("tile width"); err != nil {
		return err
	}
	if c.Tile.Width.Min <= 0 {
		return fmt.Errorf("tile width min must be > 0, got %.2f", c.Tile.Width.Min)
	}
	if err := c.Tile.Gap.validate("tile gap"); err != nil {
		return err
	}

	if c.Coin.Radius <= 0 {
		return fmt.Errorf("coin radius must be > 0, got %.2f", c.Coin.Radius)
	}
	if err := validateChance("coin", c.Coin.SpawnChance); err != nil {
		return err
	}
	if err := c.validateSurfaceOffset("coin", c.Coin.SurfaceOffset); err != nil {
		return err
	}

	if c.Enemy.Radius <= 0 {
		return fmt.Errorf("enemy radius must be > 0, got %.2f", c.Enemy.Radius)
	}
	if err := validateChance("enemy", c.Enemy.SpawnChance); err != nil {
		return err
	}
	if err := c.validateSurfaceOffset("enemy", c.Enemy.SurfaceOffset); err != nil {
		return err
	}
	if c.Enemy.Amplitude < 0 {
		return fmt.Errorf("enemy amplitude must be >= 0, got %.2f", c.Enemy.Amplitude)
	}
	if c.Enemy.PhaseStep < 0 {
		return fmt.Errorf("enemy phaseStep must be >= 0, got %.2f", c.Enemy.PhaseStep)
	}

	if c.Field.InitialPairs < 1 {
		return fmt.Errorf("field initialPairs must be >= 1, got %d", c.Field.InitialPairs)
	}
	// 开局砖块组不能互相重叠
	if c.Field.InitialSpacing < c.Tile.Width.Max {
		return fmt.Errorf("field initialSpacing (%.1f) must be >= tile width max (%.1f)",
			c.Field.InitialSpacing, c.Tile.Width.Max)
	}

	return nil
}

func (r Range) validate(name string) error {
	if r.Min >= r.Max {
		return fmt.Errorf("%s range invalid: min(%.1f) >= max(%.1f)", name, r.Min, r.Max)
	}
	return nil
}

func validateChance(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s spawnChance must be within [0, 1], got %.2f", name, p)
	}
	return nil
}

// validateSurfaceOffset 检查生成点距砖块表面的距离
// 生成点必须落在画面上半部分（天花板侧）或下半部分（地面侧）之内
func (c *GameConfig) validateSurfaceOffset(name string, offset float64) error {
	if offset <= 0 || c.Tile.Height+offset >= GameWindowHeight/2 {
		return fmt.Errorf("%s surfaceOffset must be within (0, %.1f), got %.2f",
			name, GameWindowHeight/2-c.Tile.Height, offset)
	}
	return nil
}
