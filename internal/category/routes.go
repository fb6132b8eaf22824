package category

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-terrace/api/internal/asset"
	categoryModel "portfolio-terrace/api/internal/model/category"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/internal/upload"
)

// SetupCategoryRoutes 设置分类路由
func SetupCategoryRoutes(public, admin *gin.RouterGroup, db *gorm.DB, saver *upload.Saver, assets *asset.Manager) {
	h := resource.NewHandler(
		resource.NewService[categoryModel.Category](db, Schema(), assets), saver, assets)

	categories := public.Group("/categories")
	{
		categories.GET("", h.List) // 分类列表, 支持?section=过滤
		categories.GET("/:id", h.Get)
	}

	adminCategories := admin.Group("/categories")
	{
		adminCategories.POST("", h.Create)
		adminCategories.PUT("/:id", h.Update)
		adminCategories.DELETE("/:id", h.Delete)
	}
}
