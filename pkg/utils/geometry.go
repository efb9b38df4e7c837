// Package utils 提供通用工具函数
//
// geometry.go 提供碰撞判定使用的几何工具。
// 所有重叠判定都使用严格不等式：恰好相切不算重叠。
package utils

import "math"

// Distance 返回两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// CirclesOverlap 判断两个圆是否重叠
// 圆心距离严格小于半径之和时返回 true
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// SquareOverlapsRect 判断以 (cx, cy) 为中心、半边长为 half 的正方形是否与矩形重叠
//
// 用于把圆形当作外接正方形与砖块做 AABB 判定。
//
// 参数:
//   - cx, cy: 正方形中心
//   - half: 半边长（圆的半径）
//   - x, y, w, h: 矩形左上角与尺寸
func SquareOverlapsRect(cx, cy, half, x, y, w, h float64) bool {
	return cy+half > y &&
		cy-half < y+h &&
		cx+half > x &&
		cx-half < x+w
}

// PointInRect 判断点是否在矩形内（包含左上边界，不含右下边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
