package portfolio

import (
	"time"
)

// Skill 技能表
type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	// 分类: frontend, backend, devops, database, tools, other
	Category string `gorm:"type:varchar(50);not null;index" json:"category"`
	// 熟练度 0-100, 越界输入会被钳制而不是报错
	Proficiency int       `gorm:"default:0" json:"proficiency"`
	Icon        string    `gorm:"type:varchar(255)" json:"icon"`
	Order       int       `gorm:"column:sort_order;default:0" json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
