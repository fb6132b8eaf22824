package portfolio

import (
	"time"
)

// Interest 兴趣爱好表
type Interest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Icon        string    `gorm:"type:varchar(255)" json:"icon"`
	Description string    `gorm:"type:text" json:"description"`
	Order       int       `gorm:"column:sort_order;default:0" json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
