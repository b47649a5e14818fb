//go:build !darwin

package organizer

import (
	"os"
	"time"
)

// birthTime 当前平台不暴露创建时间，统一走修改时间回退
func birthTime(_ os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
