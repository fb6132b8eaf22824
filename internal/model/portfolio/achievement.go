package portfolio

import (
	"time"
)

// Achievement 荣誉/成就表
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	// 颁发机构
	Issuer string `gorm:"type:varchar(255)" json:"issuer"`
	// 获得日期, 展示文本(如 "2024-06")
	Date      string    `gorm:"type:varchar(50)" json:"date"`
	Image     string    `gorm:"type:varchar(255)" json:"image"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
