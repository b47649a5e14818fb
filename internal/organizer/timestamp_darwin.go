//go:build darwin

package organizer

import (
	"os"
	"syscall"
	"time"
)

// birthTime 从 stat 结果中取文件创建时间
func birthTime(info os.FileInfo) (time.Time, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec), true
}
