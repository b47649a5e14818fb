package classifier

import "strings"

// Category 文件分类，封闭枚举，运行时不可扩展
type Category string

const (
	Images    Category = "images"
	Documents Category = "documents"
	Music     Category = "music"
	Videos    Category = "videos"
	Archives  Category = "archives"
	Others    Category = "others"
)

// All 返回所有分类，顺序固定，用于目录创建和统计输出
func All() []Category {
	return []Category{Images, Documents, Music, Videos, Archives, Others}
}

// Folder 返回分类在目标目录下的文件夹名称
// 注意: music 分类的目录名历史上是 musics，保持兼容
func (c Category) Folder() string {
	if c == Music {
		return "musics"
	}
	return string(c)
}

// 扩展名分类表，固定不可配置
// 代码类扩展名（py、js、go 等）刻意归入 others，不单独建类
var extCategories = buildExtMap()

func buildExtMap() map[string]Category {
	table := map[Category][]string{
		Images: {"jpg", "jpeg", "png", "gif", "bmp", "tiff", "svg", "webp",
			"heic", "raw", "cr2", "nef"},
		Documents: {"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt",
			"rtf", "odt", "ods", "odp", "csv", "md", "pages", "numbers", "key"},
		Music:    {"mp3", "wav", "flac", "aac", "ogg", "m4a", "wma", "aiff", "alac"},
		Videos:   {"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm", "m4v", "3gp", "mpeg", "mpg"},
		Archives: {"zip", "rar", "7z", "tar", "gz", "bz2", "xz", "iso", "dmg"},
	}

	m := make(map[string]Category)
	for category, exts := range table {
		for _, ext := range exts {
			m[ext] = category
		}
	}
	return m
}

// Classify 根据扩展名对文件进行分类
// 大小写不敏感，接受带点或不带点的扩展名
// 未知或缺失扩展名归入 others，永不失败
func Classify(ext string) Category {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if category, ok := extCategories[ext]; ok {
		return category
	}
	return Others
}
