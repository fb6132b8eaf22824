// Package skill 技能资源路由
package skill

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/model/portfolio"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/internal/upload"
)

// 技能分类的合法取值
var categories = []string{"frontend", "backend", "devops", "database", "tools", "other"}

func Schema() *resource.Schema {
	return &resource.Schema{
		Name: "技能",
		Updatable: []string{
			"name", "category", "proficiency", "icon", "order", "active",
		},
		Required:   []string{"name", "category"},
		MaxLen:     map[string]int{"name": 100},
		Enums:      map[string][]string{"category": categories},
		BoolFields: []string{"active"},
		IntFields:  []string{"proficiency", "order"},
		Defaults:   map[string]any{"active": true},
		Filters: map[string][]string{
			"category": categories,
			"active":   {"true", "false"},
		},
		ColumnOf:    map[string]string{"order": "sort_order"},
		SortKeys:    "sort_order asc, created_at desc",
		Toggleable:  []string{"active"},
		ClampFields: []string{"proficiency"},
	}
}

// SetupSkillRoutes 设置技能路由
func SetupSkillRoutes(public, admin *gin.RouterGroup, db *gorm.DB, saver *upload.Saver, assets *asset.Manager) {
	h := resource.NewHandler(
		resource.NewService[portfolio.Skill](db, Schema(), assets), saver, assets)

	skills := public.Group("/skills")
	{
		skills.GET("", h.List)
		skills.GET("/:id", h.Get)
	}

	adminSkills := admin.Group("/skills")
	{
		adminSkills.POST("", h.Create)
		adminSkills.PUT("/:id", h.Update)
		adminSkills.DELETE("/:id", h.Delete)
		adminSkills.PATCH("/:id/toggle-active", h.Toggle("active"))
	}
}
