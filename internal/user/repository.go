// Package user 管理员账号的数据访问层
// 密码只存bcrypt哈希, 创建/重置密码也由这里负责(供命令行工具使用)
package user

import (
	"gorm.io/gorm"

	userModel "portfolio-terrace/api/internal/model/user"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository 用户数据访问层
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库实例
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail 按邮箱查找账号
func (r *UserRepository) FindByEmail(email string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID 按ID查找账号
func (r *UserRepository) FindByID(id uint) (*userModel.User, error) {
	var u userModel.User
	err := r.db.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create 创建管理员账号
func (r *UserRepository) Create(email, password, name string) (*userModel.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userModel.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         "admin",
	}
	if err := r.db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword 重置密码
func (r *UserRepository) SetPassword(id uint, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.db.Model(&userModel.User{}).Where("id = ?", id).
		Update("password_hash", string(hash)).Error
}

// VerifyPassword 校验明文密码
func (r *UserRepository) VerifyPassword(u *userModel.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
