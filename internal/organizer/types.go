package organizer

import (
	"sort"

	"github.com/zakariaejaidi/classfy/internal/classifier"
)

// Stats 单次运行的统计信息
type Stats struct {
	TotalFiles  int                           // 源目录中发现的文件总数
	Placed      int                           // 成功搬移的文件数
	Errors      int                           // 跳过的问题文件数
	Duplicates  []string                      // 重复文件的原始路径，按发现顺序
	PerCategory map[classifier.Category]int   // 每个分类的落盘数量
}

// DuplicateList 返回排序后的重复文件路径副本，用于最终报告
func (s *Stats) DuplicateList() []string {
	list := make([]string, len(s.Duplicates))
	copy(list, s.Duplicates)
	sort.Strings(list)
	return list
}

// Outcome 单个文件的处理结果
type Outcome struct {
	Duplicate bool                // 内容重复，文件未被搬移
	Category  classifier.Category // 非重复时的归属分类
	DestPath  string              // 非重复时的落盘路径
}

// Options 放置行为的可调参数
type Options struct {
	MaxNameAttempts int  // 候选名冲突重试上限
	Sniff           bool // 对 others 分类的文件做内容类型探测日志
}
