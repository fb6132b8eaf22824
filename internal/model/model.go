package model

import (
	"gorm.io/gorm"

	"portfolio-terrace/api/internal/model/blog"
	"portfolio-terrace/api/internal/model/category"
	"portfolio-terrace/api/internal/model/currentwork"
	"portfolio-terrace/api/internal/model/portfolio"
	"portfolio-terrace/api/internal/model/settings"
	"portfolio-terrace/api/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 管理员
		&user.User{},
		// 作品集内容
		&portfolio.Project{},
		&portfolio.Skill{},
		&portfolio.Research{},
		&portfolio.Achievement{},
		&portfolio.Interest{},
		// 博客与分类
		&blog.Blog{},
		&category.Category{},
		// 进行中的工作
		&currentwork.CurrentWork{},
		// 站点设置
		&settings.Settings{},
	)
	if err != nil {
		return err
	}
	return nil
}
