package organizer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/zakariaejaidi/classfy/internal/classifier"
	"github.com/zakariaejaidi/classfy/internal/hasher"
	"github.com/zakariaejaidi/classfy/internal/logger"
)

// Organizer 遍历源目录，逐个文件调用 Placer，汇总统计信息
// 严格串行：一个文件完整处理完（哈希、分类、搬移或跳过）才轮到下一个
type Organizer struct {
	fs        afero.Fs
	sourceDir string
	destDir   string
	placer    *Placer
	Stats     Stats
}

// New 创建整理器
// 源目录不存在属于配置错误，在触碰任何文件之前失败
func New(fs afero.Fs, h hasher.Hasher, sourceDir, destDir string, opts Options) (*Organizer, error) {
	exists, err := afero.DirExists(fs, sourceDir)
	if err != nil {
		return nil, fmt.Errorf("检查源目录失败: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("源目录不存在: %s", sourceDir)
	}

	registry := NewRegistry()

	return &Organizer{
		fs:        fs,
		sourceDir: sourceDir,
		destDir:   destDir,
		placer:    NewPlacer(fs, h, destDir, registry, opts),
		Stats: Stats{
			PerCategory: make(map[classifier.Category]int),
		},
	}, nil
}

// Run 执行一次完整的整理
// 遍历顺序由文件系统决定；注册表的正确性只要求
// "指纹在后续同内容文件被评估之前已登记"，串行遍历天然满足
func (o *Organizer) Run() error {
	if err := o.ensureLayout(); err != nil {
		return err
	}

	return afero.Walk(o.fs, o.sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Get().Debug().Err(err).Str("path", path).Msg("访问路径出错")
			return nil
		}
		if info.IsDir() {
			return nil
		}

		o.Stats.TotalFiles++

		outcome, err := o.placer.Place(path, info)
		if err != nil {
			// 单个文件的失败不终止整次运行
			o.Stats.Errors++
			logger.Get().Error().Err(err).Str("file", path).Msg("处理文件失败")
			return nil
		}

		if outcome.Duplicate {
			o.Stats.Duplicates = append(o.Stats.Duplicates, path)
		} else {
			o.Stats.Placed++
			o.Stats.PerCategory[outcome.Category]++
		}

		return nil
	})
}

// ensureLayout 在目标目录下创建全部分类文件夹
func (o *Organizer) ensureLayout() error {
	for _, category := range classifier.All() {
		dir := filepath.Join(o.destDir, category.Folder())
		if err := o.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建分类目录失败: %w", err)
		}
	}
	return nil
}
