package main

import (
	"fmt"

	"portfolio-terrace/api/config"
	"portfolio-terrace/api/internal/database"
	"portfolio-terrace/api/internal/route"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化数据库
	database.InitDatabase()

	// 3. 设置路由
	r := route.SetupRouter()

	// 4. 启动服务
	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	if config.Conf.Server.Port == 0 {
		addr = ":8080"
	}
	r.Run(addr)
}
