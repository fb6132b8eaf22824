// Package research 科研成果资源路由
package research

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
		Name: "科研成果",
		Updatable: []string{
			"title", "description", "authors", "published_in", "year",
			"paper_url", "image", "featured", "order", "active",
		},
		Required:   []string{"title", "description"},
		MaxLen:     map[string]int{"title": 255},
		BoolFields: []string{"featured", "active"},
		IntFields:  []string{"year", "order"},
		Defaults:   map[string]any{"active": true},
		Filters: map[string][]string{
			"featured": {"true", "false"},
			"active":   {"true", "false"},
		},
		ColumnOf:   map[string]string{"order": "sort_order"},
		SortKeys:   "featured desc, sort_order asc, created_at desc",
		ImageField: "image",
		Toggleable: []string{"featured", "active"},
	}
}

// SetupResearchRoutes 设置科研成果路由
func SetupResearchRoutes(public, admin *gin.RouterGroup, db *gorm.DB, saver *upload.Saver, assets *asset.Manager) {
	h := resource.NewHandler(
		resource.NewService[portfolio.Research](db, Schema(), assets), saver, assets)

	research := public.Group("/research")
	{
		research.GET("", h.List)
		research.GET("/:id", h.Get)
	}

	adminResearch := admin.Group("/research")
	{
		adminResearch.POST("", h.Create)
		adminResearch.PUT("/:id", h.Update)
		adminResearch.DELETE("/:id", h.Delete)
		adminResearch.PATCH("/:id/toggle-featured", h.Toggle("featured"))
		adminResearch.PATCH("/:id/toggle-active", h.Toggle("active"))
	}
}
