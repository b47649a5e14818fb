package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/zakariaejaidi/classfy/config"
	"github.com/zakariaejaidi/classfy/internal/hasher"
	"github.com/zakariaejaidi/classfy/internal/logger"
	"github.com/zakariaejaidi/classfy/internal/organizer"
)

type OrganizeOptions struct {
	SourceDir string
	DestDir   string
	Verbose   bool
}

// RunOrganize 执行一次完整的整理运行
// 致命错误（源目录缺失、哈希能力不可用）在触碰任何文件之前返回
func RunOrganize(opts *OrganizeOptions) (*organizer.Stats, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logLevel := cfg.Logging.Level
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, cfg.Logging.File); err != nil {
		return nil, err
	}

	runID := uuid.NewString()[:8]
	logger.Get().Info().
		Str("run_id", runID).
		Str("source", opts.SourceDir).
		Str("dest", opts.DestDir).
		Msg("开始整理")

	fs := afero.NewOsFs()

	h := hasher.New(fs)
	if err := h.Verify(); err != nil {
		return nil, fmt.Errorf("哈希能力自检失败: %w", err)
	}

	org, err := organizer.New(fs, h, opts.SourceDir, opts.DestDir, organizer.Options{
		MaxNameAttempts: cfg.Placer.MaxNameAttempts,
		Sniff:           cfg.Placer.Sniff,
	})
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	if err := org.Run(); err != nil {
		return nil, fmt.Errorf("整理失败: %w", err)
	}

	logger.Get().Info().
		Str("run_id", runID).
		Dur("duration", time.Since(startTime).Round(time.Millisecond)).
		Int("total", org.Stats.TotalFiles).
		Int("placed", org.Stats.Placed).
		Int("duplicates", len(org.Stats.Duplicates)).
		Int("errors", org.Stats.Errors).
		Msg("整理完成")

	return &org.Stats, nil
}
