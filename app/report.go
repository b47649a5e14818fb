package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zakariaejaidi/classfy/internal/classifier"
	"github.com/zakariaejaidi/classfy/internal/organizer"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)

	reportLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	reportPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("147")).
			Italic(true)

	reportSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// RenderReport 渲染运行结束后的控制台报告
// 内容: 重复文件的原始路径（已排序）、重复总数、搬移总数、各分类数量
func RenderReport(stats *organizer.Stats) string {
	var b strings.Builder

	separator := reportSeparatorStyle.Render("==============================")

	b.WriteString(separator + "\n")
	b.WriteString(reportTitleStyle.Render("整理完成") + "\n")
	b.WriteString(separator + "\n")

	duplicates := stats.DuplicateList()
	if len(duplicates) > 0 {
		b.WriteString(reportLabelStyle.Render("跳过的重复文件:") + "\n")
		for _, path := range duplicates {
			b.WriteString("  " + reportPathStyle.Render(path) + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("重复文件: %d\n", len(duplicates)))
	b.WriteString(fmt.Sprintf("已搬移: %d\n", stats.Placed))

	b.WriteString(reportLabelStyle.Render("各分类数量:") + "\n")
	for _, category := range classifier.All() {
		b.WriteString(fmt.Sprintf("  %s: %d\n", category.Folder(), stats.PerCategory[category]))
	}

	if stats.Errors > 0 {
		b.WriteString(fmt.Sprintf("跳过的问题文件: %d\n", stats.Errors))
	}

	b.WriteString(separator)

	return b.String()
}
