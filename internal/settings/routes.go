package settings

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/upload"
)

// SetupSettingsRoutes 设置站点设置路由
func SetupSettingsRoutes(public, admin *gin.RouterGroup, db *gorm.DB, saver *upload.Saver, assets *asset.Manager) {
	h := NewSettingsHandler(NewSettingsService(db, assets), saver, assets)

	public.GET("/settings", h.Get)   // 站点设置(公开)
	admin.PUT("/settings", h.Update) // 更新设置(管理员)
}
