// Package achievement 荣誉/成就资源路由
package achievement

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/model/portfolio"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/internal/upload"
)

func Schema() *resource.Schema {
	return &resource.Schema{
		Name: "成就",
		Updatable: []string{
			"title", "description", "issuer", "date", "image", "order", "active",
		},
		Required:   []string{"title", "description"},
		MaxLen:     map[string]int{"title": 255},
		BoolFields: []string{"active"},
		IntFields:  []string{"order"},
		Defaults:   map[string]any{"active": true},
		Filters: map[string][]string{
			"active": {"true", "false"},
		},
		ColumnOf:   map[string]string{"order": "sort_order"},
		SortKeys:   "sort_order asc, created_at desc",
		ImageField: "image",
		Toggleable: []string{"active"},
	}
}

// SetupAchievementRoutes 设置成就路由
func SetupAchievementRoutes(public, admin *gin.RouterGroup, db *gorm.DB, saver *upload.Saver, assets *asset.Manager) {
	h := resource.NewHandler(
		resource.NewService[portfolio.Achievement](db, Schema(), assets), saver, assets)

	achievements := public.Group("/achievements")
	{
		achievements.GET("", h.List)
		achievements.GET("/:id", h.Get)
	}

	adminAchievements := admin.Group("/achievements")
	{
		adminAchievements.POST("", h.Create)
		adminAchievements.PUT("/:id", h.Update)
		adminAchievements.DELETE("/:id", h.Delete)
		adminAchievements.PATCH("/:id/toggle-active", h.Toggle("active"))
	}
}
