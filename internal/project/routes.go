// Package project 项目资源路由
package project

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/model/portfolio"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/internal/upload"
)

// Schema 项目的字段规则
func Schema() *resource.Schema {
	return &resource.Schema{
		Name: "项目",
		Updatable: []string{
			"title", "description", "image", "technologies", "category",
			"live_url", "github_url", "featured", "order", "active",
		},
		Required:   []string{"title", "description"},
		MaxLen:     map[string]int{"title": 255},
		BoolFields: []string{"featured", "active"},
		IntFields:  []string{"order"},
		JSONFields: []string{"technologies"},
		Defaults:   map[string]any{"active": true},
		Filters: map[string][]string{
			"category": nil,
			"featured": {"true", "false"},
			"active":   {"true", "false"},
		},
		ColumnOf:   map[string]string{"order": "sort_order"},
		SortKeys:   "featured desc, sort_order asc, created_at desc",
		ImageField: "image",
		Toggleable: []string{"featured", "active"},
	}
}

// SetupProjectRoutes 设置项目路由
func SetupProjectRoutes(public, admin *gin.RouterGroup, db *gorm.DB, saver *upload.Saver, assets *asset.Manager) {
	h := resource.NewHandler(
		resource.NewService[portfolio.Project](db, Schema(), assets), saver, assets)

	projects := public.Group("/projects")
	{
		projects.GET("", h.List)    // 项目列表
		projects.GET("/:id", h.Get) // 项目详情
	}

	adminProjects := admin.Group("/projects")
	{
		adminProjects.POST("", h.Create)                                  // 创建项目
		adminProjects.PUT("/:id", h.Update)                               // 更新项目
		adminProjects.DELETE("/:id", h.Delete)                            // 删除项目
		adminProjects.PATCH("/:id/toggle-featured", h.Toggle("featured")) // 切换置顶
		adminProjects.PATCH("/:id/toggle-active", h.Toggle("active"))     // 切换可见
	}
}
