// Package interest 兴趣爱好资源路由
package interest

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
		Name: "兴趣",
		Updatable: []string{
			"name", "icon", "description", "order", "active",
		},
		Required:   []string{"name"},
		MaxLen:     map[string]int{"name": 100},
		BoolFields: []string{"active"},
		IntFields:  []string{"order"},
		Defaults:   map[string]any{"active": true},
		Filters: map[string][]string{
			"active": {"true", "false"},
		},
		ColumnOf:   map[string]string{"order": "sort_order"},
		SortKeys:   "sort_order asc, created_at desc",
		Toggleable: []string{"active"},
	}
}

// SetupInterestRoutes 设置兴趣路由
func SetupInterestRoutes(public, admin *gin.RouterGroup, db *gorm.DB, saver *upload.Saver, assets *asset.Manager) {
	h := resource.NewHandler(
		resource.NewService[portfolio.Interest](db, Schema(), assets), saver, assets)

	interests := public.Group("/interests")
	{
		interests.GET("", h.List)
		interests.GET("/:id", h.Get)
	}

	adminInterests := admin.Group("/interests")
	{
		adminInterests.POST("", h.Create)
		adminInterests.PUT("/:id", h.Update)
		adminInterests.DELETE("/:id", h.Delete)
		adminInterests.PATCH("/:id/toggle-active", h.Toggle("active"))
	}
}
