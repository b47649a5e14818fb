package organizer

import (
	"io"

	"github.com/h2non/filetype"

	"github.com/zakariaejaidi/classfy/internal/logger"
)

// sniffHeaderSize 内容类型探测所需的文件头部大小（字节）
const sniffHeaderSize = 261

// sniffContent 对归入 others 的文件做内容类型探测，仅输出日志
// 分类始终由扩展名决定，这里只是提示"这个文件可能其实是什么"
func (p *Placer) sniffContent(path string) {
	file, err := p.fs.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	head := make([]byte, sniffHeaderSize)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return
	}

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return
	}

	logger.Get().Debug().
		Str("file", path).
		Str("detected_mime", kind.MIME.Value).
		Msg("按扩展名归入 others，但内容疑似已知类型")
}
