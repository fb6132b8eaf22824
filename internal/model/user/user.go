// Package user 管理员账号模型
package user

import (
	"time"
)

// User 管理员账号表
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	// bcrypt哈希, 不对外序列化
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Name         string `gorm:"type:varchar(100)" json:"name"`
	// 角色, 目前只有 admin
	Role      string    `gorm:"type:varchar(50);default:'admin'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
