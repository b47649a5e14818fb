package organizer

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// hashPrefixLen 指纹在文件名中使用的前缀长度
const hashPrefixLen = 4

// BuildName 根据时间戳和内容指纹生成目标文件名
// 格式: YYYYMMDD-HHMMSS-<hash4>.<ext>，扩展名统一小写
// 无扩展名的文件省略结尾的点
// 冲突处理不在这里做：Name Builder 看不到目标目录的现状
func BuildName(ts time.Time, fingerprint, ext string) string {
	prefix := fingerprint
	if len(prefix) > hashPrefixLen {
		prefix = prefix[:hashPrefixLen]
	}

	name := ts.Format("20060102-150405") + "-" + prefix

	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// suffixed 为候选名追加冲突序号，序号插在扩展名之前
// "20240102-030405-ab12.txt" + 1 -> "20240102-030405-ab12_1.txt"
func suffixed(name string, counter int) string {
	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return fmt.Sprintf("%s_%d", name, counter)
	}
	return fmt.Sprintf("%s_%d%s", name[:dot], counter, name[dot:])
}

// fileTimestamp 返回文件的最佳可用时间戳
// 平台暴露创建时间时优先使用，否则回退到修改时间
// 回退是确定性的降级，不是错误
func fileTimestamp(info os.FileInfo) time.Time {
	if birth, ok := birthTime(info); ok {
		return birth
	}
	return info.ModTime()
}
