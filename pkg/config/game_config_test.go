package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2.0, cfg.ScrollSpeed)
	assert.Equal(t, 15.0, cfg.Ball.Radius)
	assert.Equal(t, 0.2, cfg.Ball.Gravity)
	assert.Equal(t, 10, cfg.Ball.TrailLength)
	assert.Equal(t, Range{Min: 100, Max: 140}, cfg.Tile.Width)
	assert.Equal(t, Range{Min: 150, Max: 250}, cfg.Tile.Gap)
	assert.Equal(t, 5, cfg.Field.InitialPairs)
	assert.Equal(t, 220.0, cfg.Field.InitialSpacing)
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
seed: 42
scrollSpeed: 3
coin:
  spawnChance: 1
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, uint64(42), cfg.Seed)
				assert.Equal(t, 3.0, cfg.ScrollSpeed)
				assert.Equal(t, 1.0, cfg.Coin.SpawnChance)
				// 未指定的字段保留默认值
				assert.Equal(t, 10.0, cfg.Coin.Radius)
				assert.Equal(t, 0.4, cfg.Enemy.SpawnChance)
			},
		},
		{
			name:        "empty document",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, DefaultGameConfig(), cfg)
			},
		},
		{
			name: "inverted width range",
			yamlContent: `
tile:
  width:
    min: 140
    max: 100
`,
			wantErr:     true,
			errContains: "tile width range invalid",
		},
		{
			name: "empty gap range",
			yamlContent: `
tile:
  gap:
    min: 200
    max: 200
`,
			wantErr:     true,
			errContains: "tile gap range invalid",
		},
		{
			name: "probability above one",
			yamlContent: `
enemy:
  spawnChance: 1.5
`,
			wantErr:     true,
			errContains: "enemy spawnChance",
		},
		{
			name: "overlapping initial pairs",
			yamlContent: `
field:
  initialSpacing: 120
`,
			wantErr:     true,
			errContains: "initialSpacing",
		},
		{
			name: "coin offset off screen",
			yamlContent: `
coin:
  surfaceOffset: 500
`,
			wantErr:     true,
			errContains: "coin surfaceOffset",
		},
		{
			name: "enemy offset not positive",
			yamlContent: `
enemy:
  surfaceOffset: 0
`,
			wantErr:     true,
			errContains: "enemy surfaceOffset",
		},
		{
			name: "negative enemy amplitude",
			yamlContent: `
enemy:
  amplitude: -1
`,
			wantErr:     true,
			errContains: "enemy amplitude",
		},
		{
			name: "negative enemy phase step",
			yamlContent: `
enemy:
  phaseStep: -0.05
`,
			wantErr:     true,
			errContains: "enemy phaseStep",
		},
		{
			name: "ball starts outside playfield",
			yamlContent: `
ball:
  startX: 700
`,
			wantErr:     true,
			errContains: "ball startX",
		},
		{
			name: "ball start offset below floor",
			yamlContent: `
ball:
  startOffsetY: -10
`,
			wantErr:     true,
			errContains: "ball startOffsetY",
		},
		{
			name:        "malformed yaml",
			yamlContent: "ball: [",
			wantErr:     true,
			errContains: "failed to parse game config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "gravityflip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scrollSpeed: 4\n"), 0644))

	cfg, err := LoadGameConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.ScrollSpeed)

	_, err = LoadGameConfig(filepath.Join(tmpDir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read game config")
}

func TestLoadShippedGameConfig(t *testing.T) {
	// 测试在包目录运行，数据目录位于项目根目录
	cfg, err := LoadGameConfig(filepath.Join("..", "..", DefaultGameConfigPath))
	require.NoError(t, err)

	expected := DefaultGameConfig()
	assert.Equal(t, expected, cfg)
}

func TestRangeLerp(t *testing.T) {
	r := Range{Min: 100, Max: 140}
	assert.Equal(t, 100.0, r.Lerp(0))
	assert.Equal(t, 120.0, r.Lerp(0.5))
	assert.Less(t, r.Lerp(0.999999), 140.0)
}

func TestPanelButtonInsidePanel(t *testing.T) {
	px, py, pw, ph := GetPanelBounds()
	bx, by, bw, bh := GetPanelButtonBounds()

	assert.GreaterOrEqual(t, bx, px)
	assert.GreaterOrEqual(t, by, py)
	assert.LessOrEqual(t, bx+bw, px+pw)
	assert.LessOrEqual(t, by+bh, py+ph)
}
