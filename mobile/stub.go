//go:build !mobile

// stub.go - 非移动端构建时的占位文件
package mobile
