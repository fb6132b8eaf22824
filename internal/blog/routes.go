package blog

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-terrace/api/internal/asset"
	blogModel "portfolio-terrace/api/internal/model/blog"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/internal/upload"
)

// SetupBlogRoutes 设置博客路由
// 公开列表只返回已发布文章; 管理端列表不过滤
// 公开详情支持slug或ID, 读取成功后阅读量+1
func SetupBlogRoutes(public, admin *gin.RouterGroup, db *gorm.DB, saver *upload.Saver, assets *asset.Manager) {
	h := resource.NewHandler(
		resource.NewService[blogModel.Blog](db, Schema(), assets), saver, assets)

	blogs := public.Group("/blogs")
	{
		blogs.GET("", h.ListWith(map[string]any{"published": true})) // 已发布文章列表
		blogs.GET("/:id", h.Get)                                     // 文章详情(slug或ID)
	}

	adminBlogs := admin.Group("/blogs")
	{
		adminBlogs.GET("", h.List) // 全部文章(含未发布)
		adminBlogs.POST("", h.Create)
		adminBlogs.PUT("/:id", h.Update)
		adminBlogs.DELETE("/:id", h.Delete)
		adminBlogs.PATCH("/:id/toggle-published", h.Toggle("published")) // 发布/下线
	}
}
