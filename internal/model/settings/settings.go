// Package settings 站点设置模型
package settings

import (
	"time"
)

// Settings 站点设置表, 单例, 首次读取时自动创建
type Settings struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	SiteName string `gorm:"type:varchar(255)" json:"site_name"`
	Tagline  string `gorm:"type:varchar(255)" json:"tagline"`
	About    string `gorm:"type:text" json:"about"`
	Email    string `gorm:"type:varchar(255)" json:"email"`
	Github   string `gorm:"type:varchar(255)" json:"github"`
	Linkedin string `gorm:"type:varchar(255)" json:"linkedin"`
	Twitter  string `gorm:"type:varchar(255)" json:"twitter"`
	// 简历文件路径(PDF)
	Resume string `gorm:"type:varchar(255)" json:"resume"`
	// 头像路径
	Avatar    string    `gorm:"type:varchar(255)" json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
