// Package derive 写入前计算的派生字段: slug、摘要、阅读时长
// 全部为纯函数, 不访问数据库和文件系统
package derive

import (
	"regexp"
	"strings"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	htmlTag  = regexp.MustCompile(`<[^>]*>`)
	spaces   = regexp.MustCompile(`\s+`)
)

// Slugify 由标题生成slug
// 规则: 转小写 -> 非[a-z0-9]的连续片段替换为单个连字符 -> 去掉首尾连字符
// 空输入得到空slug, 幂等
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Excerpt 从正文截取摘要
// 去掉标签后截断到maxLen个字符, 发生截断时追加省略号
// 按rune截断, 多字节字符不会被切坏
func Excerpt(content string, maxLen int) string {
	plain := stripTags(content)
	if maxLen <= 0 {
		return plain
	}
	runes := []rune(plain)
	if len(runes) <= maxLen {
		return plain
	}
	return string(runes[:maxLen]) + "..."
}

// ReadTime 估算阅读时长(分钟), 按每分钟wpm个词, 最少1分钟
func ReadTime(content string, wpm int) int {
	if wpm <= 0 {
		wpm = 200
	}
	words := len(strings.Fields(stripTags(content)))
	minutes := (words + wpm - 1) / wpm
	if minutes < 1 {
		return 1
	}
	return minutes
}

// stripTags 去掉HTML/Markdown标签, 压缩空白
func stripTags(content string) string {
	plain := htmlTag.ReplaceAllString(content, " ")
	plain = spaces.ReplaceAllString(plain, " ")
	return strings.TrimSpace(plain)
}
