// create-admin 一次性的管理员开通/密码重置工具
// 已存在同邮箱账号时重置其密码, 否则创建新账号
package main

import (
	"errors"
	"flag"
	"log"

	"gorm.io/gorm"

	"portfolio-terrace/api/config"
	"portfolio-terrace/api/internal/database"
	"portfolio-terrace/api/internal/user"
)

func main() {
	email := flag.String("email", "", "管理员邮箱")
	password := flag.String("password", "", "登录密码")
	name := flag.String("name", "admin", "显示名称")
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("用法: create-admin -email <邮箱> -password <密码> [-name <名称>]")
	}

	config.MustLoad(*configPath)
	database.InitDatabase()

	repo := user.NewUserRepository(database.GetDB())

	existing, err := repo.FindByEmail(*email)
	if err == nil {
		// 已存在, 重置密码
		if err := repo.SetPassword(existing.ID, *password); err != nil {
			log.Fatalf("重置密码失败: %v", err)
		}
		log.Printf("已重置管理员密码: %s", *email)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("查询账号失败: %v", err)
	}

	created, err := repo.Create(*email, *password, *name)
	if err != nil {
		log.Fatalf("创建管理员失败: %v", err)
	}
	log.Printf("已创建管理员: %s (id=%d)", created.Email, created.ID)
}
