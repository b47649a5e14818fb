package organizer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/zakariaejaidi/classfy/internal/classifier"
	"github.com/zakariaejaidi/classfy/internal/hasher"
	"github.com/zakariaejaidi/classfy/internal/logger"
)

// Placer 决定单个文件是跳过（重复）还是搬移（以及搬到哪里）
// 去重有两个来源，按固定顺序查询：
// 1. 运行内注册表，拦截本次运行已处理过的内容
// 2. 目标位置重哈希，拦截此前运行已落盘的相同内容
type Placer struct {
	fs              afero.Fs
	hasher          hasher.Hasher
	destDir         string
	registry        *Registry
	maxNameAttempts int
	sniff           bool
}

func NewPlacer(fs afero.Fs, h hasher.Hasher, destDir string, registry *Registry, opts Options) *Placer {
	return &Placer{
		fs:              fs,
		hasher:          h,
		destDir:         destDir,
		registry:        registry,
		maxNameAttempts: opts.MaxNameAttempts,
		sniff:           opts.Sniff,
	}
}

// Place 处理单个源文件
// 重复内容返回 Duplicate 结果且不触碰文件系统
// 搬移成功后源文件即被移除（移动语义，不是复制）
func (p *Placer) Place(srcPath string, info os.FileInfo) (*Outcome, error) {
	fingerprint, err := p.hasher.Sum(srcPath)
	if err != nil {
		return nil, fmt.Errorf("计算文件指纹失败: %w", err)
	}

	// 本次运行内已出现过相同内容
	if p.registry.Seen(fingerprint) {
		logger.Get().Debug().
			Str("file", srcPath).
			Str("hash", fingerprint).
			Msg("发现重复文件")
		return &Outcome{Duplicate: true}, nil
	}
	p.registry.Record(fingerprint)

	ext := filepath.Ext(srcPath)
	category := classifier.Classify(ext)
	if category == classifier.Others && p.sniff {
		p.sniffContent(srcPath)
	}

	name := BuildName(fileTimestamp(info), fingerprint, ext)
	categoryDir := filepath.Join(p.destDir, category.Folder())

	candidate := name
	for attempt := 0; attempt <= p.maxNameAttempts; attempt++ {
		destPath := filepath.Join(categoryDir, candidate)

		exists, err := afero.Exists(p.fs, destPath)
		if err != nil {
			return nil, fmt.Errorf("探测目标路径失败: %w", err)
		}

		if !exists {
			if err := p.moveFile(srcPath, destPath); err != nil {
				return nil, fmt.Errorf("移动文件失败: %w", err)
			}
			logger.Get().Debug().
				Str("source", srcPath).
				Str("destination", destPath).
				Str("category", string(category)).
				Msg("文件搬移完成")
			return &Outcome{Category: category, DestPath: destPath}, nil
		}

		// 目标位置已有同名文件，重哈希判断是真重复还是名字碰撞
		existingFP, err := p.hasher.Sum(destPath)
		if err != nil {
			return nil, fmt.Errorf("读取已存在的目标文件失败: %w", err)
		}

		if existingFP == fingerprint {
			// 相同内容早已落盘（比如上一次运行），按重复处理
			logger.Get().Debug().
				Str("file", srcPath).
				Str("existing", destPath).
				Msg("目标位置已有相同内容")
			return &Outcome{Duplicate: true, Category: category}, nil
		}

		// 时间戳+哈希前缀碰撞，极少见但可能，追加序号重试
		candidate = suffixed(name, attempt+1)
		logger.Get().Debug().
			Str("file", srcPath).
			Str("candidate", candidate).
			Msg("目标名冲突，追加序号")
	}

	return nil, &PlacementError{Path: srcPath, Attempts: p.maxNameAttempts}
}

// moveFile 用 rename 移动文件，跨卷失败时回退到复制后删除
func (p *Placer) moveFile(src, dst string) error {
	if err := p.fs.Rename(src, dst); err == nil {
		return nil
	}

	sourceFile, err := p.fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := p.fs.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	if err := p.fs.Remove(src); err != nil {
		return fmt.Errorf("删除原文件失败: %w", err)
	}

	return nil
}
