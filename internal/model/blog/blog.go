// Package blog 博客文章模型
package blog

import (
	"time"
)

// Blog 博客文章表
type Blog struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`
	// 由标题派生, 唯一, 客户端不可直接设置
	Slug    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content string `gorm:"type:text;not null" json:"content"`
	// 摘要, 未提供时由正文派生
	Excerpt string `gorm:"type:text" json:"excerpt"`
	// 预计阅读时长(分钟), 由正文派生
	ReadTime int `gorm:"default:1" json:"read_time"`
	// 标签, JSON数组存储
	Tags  []string `gorm:"serializer:json" json:"tags"`
	Image string   `gorm:"type:varchar(255)" json:"image"`
	// 是否对外发布
	Published bool `gorm:"default:false;index" json:"published"`
	// 阅读量, 公开读取时递增
	Views     uint      `gorm:"default:0" json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
