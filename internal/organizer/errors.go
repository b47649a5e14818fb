package organizer

import "fmt"

// PlacementError 表示候选名重试次数超过上限
// 计数器方案理论上总会找到空位，这里只是防止无限循环的保险
type PlacementError struct {
	Path     string
	Attempts int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("文件 %s 的目标名冲突重试 %d 次后仍未找到空位", e.Path, e.Attempts)
}
