// Package category 分类模型
package category

import (
	"time"
)

// Category 分类表
// (name, section) 需要唯一(忽略大小写), 在service层写入前检查,
// 不依赖数据库唯一索引(大小写不敏感的跨字段约束索引不好表达)
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	// 分类所属的板块: project, skill, blog, research
	Section string `gorm:"type:varchar(50);not null;index" json:"section"`
	// 由name派生
	Slug      string    `gorm:"type:varchar(100);not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
