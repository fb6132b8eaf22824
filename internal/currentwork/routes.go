// Package currentwork 进行中工作资源路由
package currentwork

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-terrace/api/internal/asset"
	cwModel "portfolio-terrace/api/internal/model/currentwork"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/internal/upload"
)

// 状态枚举
var statuses = []string{"planning", "in-progress", "completed", "on-hold"}

func Schema() *resource.Schema {
	return &resource.Schema{
		Name: "进行中的工作",
		Updatable: []string{
			"title", "description", "status", "progress", "technologies",
			"links", "start_date", "expected_end", "featured", "order", "active",
		},
		Required:   []string{"title", "description"},
		MaxLen:     map[string]int{"title": 255},
		Enums:      map[string][]string{"status": statuses},
		BoolFields: []string{"featured", "active"},
		IntFields:  []string{"progress", "order"},
		JSONFields: []string{"technologies", "links"},
		Defaults:   map[string]any{"active": true},
		Filters: map[string][]string{
			"status":   statuses,
			"featured": {"true", "false"},
			"active":   {"true", "false"},
		},
		ColumnOf:      map[string]string{"order": "sort_order"},
		SortKeys:      "featured desc, sort_order asc, created_at desc",
		Toggleable:    []string{"featured", "active"},
		ClampFields:   []string{"progress"},
		ProgressField: "progress",
	}
}

// SetupCurrentWorkRoutes 设置进行中工作路由
func SetupCurrentWorkRoutes(public, admin *gin.RouterGroup, db *gorm.DB, saver *upload.Saver, assets *asset.Manager) {
	h := resource.NewHandler(
		resource.NewService[cwModel.CurrentWork](db, Schema(), assets), saver, assets)

	works := public.Group("/current-work")
	{
		works.GET("", h.List)
		works.GET("/:id", h.Get)
	}

	adminWorks := admin.Group("/current-work")
	{
		adminWorks.POST("", h.Create)
		adminWorks.PUT("/:id", h.Update)
		adminWorks.DELETE("/:id", h.Delete)
		adminWorks.PATCH("/:id/progress", h.Progress)                   // 更新进度(钳制到0-100)
		adminWorks.PATCH("/:id/toggle-featured", h.Toggle("featured"))
		adminWorks.PATCH("/:id/toggle-active", h.Toggle("active"))
	}
}
