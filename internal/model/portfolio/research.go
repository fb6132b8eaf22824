package portfolio

import (
	"time"
)

// Research 科研成果表
type Research struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	// 作者列表, 逗号分隔的展示文本
	Authors     string    `gorm:"type:varchar(255)" json:"authors"`
	PublishedIn string    `gorm:"type:varchar(255)" json:"published_in"`
	Year        int       `gorm:"default:0" json:"year"`
	PaperURL    string    `gorm:"type:varchar(255)" json:"paper_url"`
	Image       string    `gorm:"type:varchar(255)" json:"image"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	Order       int       `gorm:"column:sort_order;default:0" json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
