package recommend

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	genreDelimiterPattern = regexp.MustCompile(`[|,]+`)
	genreInvalidPattern   = regexp.MustCompile(`[^a-z0-9\s]`)
)

// NormalizeGenres 类型文本预处理：小写、分隔符转空格、去除标点
// 纯函数，空输入返回空字符串
func NormalizeGenres(raw string) string {
	if raw == "" {
		return ""
	}
	text := strings.ToLower(raw)
	// '|' 或 ',' 的连续序列替换为单个空格
	text = genreDelimiterPattern.ReplaceAllString(text, " ")
	// 仅保留小写字母、数字与空白字符
	text = genreInvalidPattern.ReplaceAllString(text, "")
	return text
}

var titleFoldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldTitle 标题折叠：小写化并去除变音符号，用于大小写无关的标题匹配
func FoldTitle(title string) string {
	folded, _, err := transform.String(titleFoldTransformer, title)
	if err != nil {
		// 折叠失败时退化为仅小写匹配
		folded = title
	}
	return strings.ToLower(folded)
}
