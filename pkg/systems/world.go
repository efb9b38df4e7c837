package systems

import "github.com/gonewx/gravityflip/pkg/entities"

// World 一局游戏中所有实体的集合
//
// Tiles 按生成顺序排列，每两个元素为一组：先地面砖块，后天花板砖块。
// 组与组之间按 X 坐标升序排列，且互不重叠。
// Coins 与 Enemies 按生成顺序排列。
type World struct {
	Ball    *entities.Ball
	Tiles   []*entities.Tile
	Coins   []*entities.Coin
	Enemies []*entities.Enemy

	trailingGap float64
}

// AddPair 将一组砖块及其附带的金币和敌人加入世界
func (w *World) AddPair(pair TilePair) {
	w.Tiles = append(w.Tiles, pair.Floor, pair.Ceiling)
	w.Coins = append(w.Coins, pair.Coins...)
	if pair.Enemy != nil {
		w.Enemies = append(w.Enemies, pair.Enemy)
	}
	w.trailingGap = pair.Gap
}

// TrailingGap 返回最新一组砖块之后需要保留的间距
func (w *World) TrailingGap() float64 {
	return w.trailingGap
}

// PairCount 返回当前砖块组数
func (w *World) PairCount() int {
	return len(w.Tiles) / 2
}

// LeadingPair 返回最靠左（最早生成）的一组砖块
func (w *World) LeadingPair() (floor, ceiling *entities.Tile, ok bool) {
	if len(w.Tiles) < 2 {
		return nil, nil, false
	}
	return w.Tiles[0], w.Tiles[1], true
}

// TrailingPair 返回最靠右（最新生成）的一组砖块
func (w *World) TrailingPair() (floor, ceiling *entities.Tile, ok bool) {
	n := len(w.Tiles)
	if n < 2 {
		return nil, nil, false
	}
	return w.Tiles[n-2], w.Tiles[n-1], true
}

// RemoveLeadingPair 移除最靠左的一组砖块
func (w *World) RemoveLeadingPair() {
	if len(w.Tiles) < 2 {
		return
	}
	n := copy(w.Tiles, w.Tiles[2:])
	clear(w.Tiles[n:])
	w.Tiles = w.Tiles[:n]
}

// Scrollers 按绘制顺序返回所有随卷轴移动的实体：砖块、金币、敌人
func (w *World) Scrollers() []entities.Scroller {
	result := make([]entities.Scroller, 0, len(w.Tiles)+len(w.Coins)+len(w.Enemies))
	for _, t := range w.Tiles {
		result = append(result, t)
	}
	for _, c := range w.Coins {
		result = append(result, c)
	}
	for _, e := range w.Enemies {
		result = append(result, e)
	}
	return result
}
