// Package currentwork 正在进行的工作模型
package currentwork

import (
	"time"
)

// Link 外部链接
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CurrentWork 当前进行中的工作表
type CurrentWork struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	// 状态: planning, in-progress, completed, on-hold
	Status string `gorm:"type:varchar(50);default:'in-progress';index" json:"status"`
	// 进度 0-100, 越界输入会被钳制而不是报错
	Progress     int      `gorm:"default:0" json:"progress"`
	Technologies []string `gorm:"serializer:json" json:"technologies"`
	// 相关链接, JSON数组存储
	Links []Link `gorm:"serializer:json" json:"links"`
	// 开始时间, 展示文本
	StartDate string `gorm:"type:varchar(50)" json:"start_date"`
	// 预计完成时间, 展示文本
	ExpectedEnd string    `gorm:"type:varchar(50)" json:"expected_end"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	Order       int       `gorm:"column:sort_order;default:0" json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
