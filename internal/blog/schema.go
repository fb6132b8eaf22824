// Package blog 博客资源: 在通用CRUD之上叠加slug、摘要/阅读时长派生和阅读计数
package blog

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	blogModel "portfolio-terrace/api/internal/model/blog"
	"portfolio-terrace/api/internal/derive"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/pkg/response"
)

const (
	// 摘要最大长度
	excerptMaxLen = 200
	// 阅读速度, 词/分钟
	wordsPerMinute = 200
)

func Schema() *resource.Schema {
	return &resource.Schema{
		Name: "文章",
		Updatable: []string{
			"title", "content", "excerpt", "tags", "image", "published",
		},
		Required:   []string{"title", "content"},
		MaxLen:     map[string]int{"title": 255},
		BoolFields: []string{"published"},
		JSONFields: []string{"tags"},
		Filters: map[string][]string{
			"published": {"true", "false"},
		},
		CustomFilters: map[string]resource.FilterFunc{
			// tags是JSON数组列, 按成员匹配
			"tag": func(tx *gorm.DB, value string) *gorm.DB {
				return tx.Where("tags LIKE ?", fmt.Sprintf(`%%"%s"%%`, value))
			},
		},
		SortKeys:    "created_at desc",
		ImageField:  "image",
		SlugSource:  "title",
		ViewField:   "views",
		Toggleable:  []string{"published"},
		Derive:      deriveFields,
		CheckUnique: checkSlugUnique,
	}
}

// deriveFields 摘要与阅读时长
// 客户端提交的摘要优先; 未提交摘要且正文有变化时从正文派生
func deriveFields(fields map[string]any, existing map[string]any) {
	content, hasContent := fields["content"].(string)

	if hasContent {
		fields["read_time"] = derive.ReadTime(content, wordsPerMinute)
	}

	if excerpt, ok := fields["excerpt"].(string); ok && strings.TrimSpace(excerpt) != "" {
		// 用户提供的摘要不覆盖
		return
	}
	if hasContent {
		fields["excerpt"] = derive.Excerpt(content, excerptMaxLen)
	}
}

// checkSlugUnique 标题派生的slug不能和其他文章重复
// 检查和写入在同一次逻辑操作中, 不依赖数据库唯一索引的报错
func checkSlugUnique(db *gorm.DB, fields map[string]any, existing map[string]any, excludeID uint) *response.BusinessError {
	slug, ok := fields["slug"].(string)
	if !ok || slug == "" {
		return nil
	}

	var count int64
	tx := db.Model(&blogModel.Blog{}).Where("slug = ?", slug)
	if excludeID > 0 {
		tx = tx.Where("id != ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return response.InternalError("检查文章标题失败", err)
	}
	if count > 0 {
		return response.ConflictError("已存在同名文章")
	}
	return nil
}
