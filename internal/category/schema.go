// Package category 分类资源: (name, section)对的大小写不敏感唯一约束
package category

import (
	"strings"

	"gorm.io/gorm"

	categoryModel "portfolio-terrace/api/internal/model/category"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/pkg/response"
)

// 分类所属板块的合法取值
var sections = []string{"project", "skill", "blog", "research"}

func Schema() *resource.Schema {
	return &resource.Schema{
		Name:      "分类",
		Updatable: []string{"name", "section"},
		Required:  []string{"name", "section"},
		MaxLen:    map[string]int{"name": 100},
		Enums:     map[string][]string{"section": sections},
		Filters: map[string][]string{
			"section": sections,
		},
		SortKeys:    "section asc, name asc",
		SlugSource:  "name",
		CheckUnique: checkNameSectionUnique,
	}
}

// checkNameSectionUnique (name, section)组合唯一, 忽略大小写
// 更新时只提交其中一个字段也要校验合并后的组合
func checkNameSectionUnique(db *gorm.DB, fields map[string]any, existing map[string]any, excludeID uint) *response.BusinessError {
	name, hasName := fields["name"].(string)
	section, hasSection := fields["section"].(string)

	// 合并出本次写入后的生效值
	if existing != nil {
		if !hasName {
			name, _ = existing["name"].(string)
		}
		if !hasSection {
			section, _ = existing["section"].(string)
		}
	} else if !hasName || !hasSection {
		// 创建时缺字段由必填校验兜底
		return nil
	}

	var count int64
	tx := db.Model(&categoryModel.Category{}).
		Where("lower(name) = ? AND section = ?", strings.ToLower(name), section)
	if excludeID > 0 {
		tx = tx.Where("id != ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return response.InternalError("检查分类失败", err)
	}
	if count > 0 {
		return response.ConflictError("该板块下已存在同名分类")
	}
	return nil
}
