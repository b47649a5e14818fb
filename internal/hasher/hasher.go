package hasher

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// ErrUnavailable 表示内容哈希能力不可用
// 没有哈希就无法去重，调用方应在处理任何文件之前中止运行
var ErrUnavailable = errors.New("内容哈希能力不可用")

// emptySHA1 空输入的 SHA-1 摘要，用于能力自检
const emptySHA1 = "da39a3ee5e6b4b0d3255bfef95601890afd80709"

// Hasher 计算文件内容指纹
// 相同内容必须产生相同指纹，与文件名和元数据无关
type Hasher interface {
	Sum(path string) (string, error)
}

// SHA1Hasher 默认实现，流式计算文件的 SHA-1 摘要
// 返回 40 位十六进制字符串，前 4 位被下游用作文件名的去重标识
type SHA1Hasher struct {
	fs afero.Fs
}

func New(fs afero.Fs) *SHA1Hasher {
	return &SHA1Hasher{fs: fs}
}

func (h *SHA1Hasher) Sum(path string) (string, error) {
	file, err := h.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	sum := sha1.New()
	if _, err := io.Copy(sum, file); err != nil {
		return "", fmt.Errorf("计算哈希失败: %w", err)
	}

	return hex.EncodeToString(sum.Sum(nil)), nil
}

// Verify 自检哈希能力
// 对空输入做一次摘要并与已知值比对，失败时返回 ErrUnavailable
func (h *SHA1Hasher) Verify() error {
	sum := sha1.Sum(nil)
	if hex.EncodeToString(sum[:]) != emptySHA1 {
		return ErrUnavailable
	}
	return nil
}
