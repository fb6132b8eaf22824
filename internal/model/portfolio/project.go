// Package portfolio 作品集展示类模型
package portfolio

import (
	"time"
)

// Project 项目表
type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	// 项目封面图, 相对于静态服务的路径, 空串表示无图
	Image string `gorm:"type:varchar(255)" json:"image"`
	// 技术栈, JSON数组存储
	Technologies []string `gorm:"serializer:json" json:"technologies"`
	// 所属分类(分类表中section=project的name)
	Category  string `gorm:"type:varchar(100);index" json:"category"`
	LiveURL   string `gorm:"type:varchar(255)" json:"live_url"`
	GithubURL string `gorm:"type:varchar(255)" json:"github_url"`
	// 是否置顶展示
	Featured bool `gorm:"default:false" json:"featured"`
	// 手动排序, 数值小的在前
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
