package derive

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "普通英文标题",
			in:   "Hello World",
			want: "hello-world",
		},
		{
			name: "大小写混合",
			in:   "My First Blog Post",
			want: "my-first-blog-post",
		},
		{
			name: "连续特殊字符合并为单个连字符",
			in:   "Web   Dev!!! & Design",
			want: "web-dev-design",
		},
		{
			name: "首尾特殊字符被去掉",
			in:   "--Hello World!--",
			want: "hello-world",
		},
		{
			name: "空输入得到空slug",
			in:   "",
			want: "",
		},
		{
			name: "全部是特殊字符",
			in:   "!!!???",
			want: "",
		},
		{
			name: "数字保留",
			in:   "Top 10 Go Tips (2024)",
			want: "top-10-go-tips-2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.in)
			assert.Equal(t, tt.want, got)
			// 输出要么为空, 要么符合slug模式
			if got != "" {
				assert.Regexp(t, slugPattern, got)
			}
			// 幂等
			assert.Equal(t, got, Slugify(got))
		})
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{
			name:   "短内容不截断",
			in:     "short content",
			maxLen: 200,
			want:   "short content",
		},
		{
			name:   "超长内容截断并加省略号",
			in:     strings.Repeat("a", 300),
			maxLen: 200,
			want:   strings.Repeat("a", 200) + "...",
		},
		{
			name:   "去掉HTML标签",
			in:     "<p>hello <b>world</b></p>",
			maxLen: 200,
			want:   "hello world",
		},
		{
			name:   "多字节字符按rune截断",
			in:     strings.Repeat("中文", 100),
			maxLen: 200,
			want:   strings.Repeat("中文", 100),
		},
		{
			name:   "多字节字符截断不切坏字符",
			in:     strings.Repeat("中文", 150),
			maxLen: 200,
			want:   strings.Repeat("中文", 100) + "...",
		},
		{
			name:   "空内容",
			in:     "",
			maxLen: 200,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Excerpt(tt.in, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestReadTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{
			name: "空内容至少1分钟",
			in:   "",
			want: 1,
		},
		{
			name: "少量文字1分钟",
			in:   "just a few words here",
			want: 1,
		},
		{
			name: "正好200词1分钟",
			in:   strings.Repeat("word ", 200),
			want: 1,
		},
		{
			name: "201词向上取整为2分钟",
			in:   strings.Repeat("word ", 201),
			want: 2,
		},
		{
			name: "标签不计入词数",
			in:   "<p><br/><img src='x'/></p>",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadTime(tt.in, 200))
		})
	}
}
