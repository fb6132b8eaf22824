package route

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolio-terrace/api/config"
	"portfolio-terrace/api/internal/achievement"
	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/auth"
	"portfolio-terrace/api/internal/blog"
	"portfolio-terrace/api/internal/category"
	"portfolio-terrace/api/internal/currentwork"
	"portfolio-terrace/api/internal/database"
	"portfolio-terrace/api/internal/interest"
	"portfolio-terrace/api/internal/middleware"
	"portfolio-terrace/api/internal/project"
	"portfolio-terrace/api/internal/research"
	"portfolio-terrace/api/internal/settings"
	"portfolio-terrace/api/internal/skill"
	"portfolio-terrace/api/internal/upload"
)

func initRoute(r *gin.Engine) {
	db := database.GetDB()
	assets := asset.NewManager(config.Conf.Upload.Dir)
	saver := upload.NewSaver(config.Conf.Upload.Dir, config.Conf.Upload.MaxSizeMB)

	// 上传文件的静态服务
	r.Static("/uploads", config.Conf.Upload.Dir)

	api := r.Group("/api")

	// 认证
	auth.SetupAuthRoutes(api, db, database.RedisDB)

	// 公开读取; 写操作全部走admin分组
	public := api.Group("")
	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.AdminRequired())

	project.SetupProjectRoutes(public, admin, db, saver, assets)
	skill.SetupSkillRoutes(public, admin, db, saver, assets)
	research.SetupResearchRoutes(public, admin, db, saver, assets)
	achievement.SetupAchievementRoutes(public, admin, db, saver, assets)
	interest.SetupInterestRoutes(public, admin, db, saver, assets)
	blog.SetupBlogRoutes(public, admin, db, saver, assets)
	category.SetupCategoryRoutes(public, admin, db, saver, assets)
	currentwork.SetupCurrentWorkRoutes(public, admin, db, saver, assets)
	settings.SetupSettingsRoutes(public, admin, db, saver, assets)
}

func SetupRouter() *gin.Engine {
	if config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	origin := config.Conf.Server.FrontendURL
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r)

	return r
}
