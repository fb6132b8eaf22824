// Package resource 九类作品集资源共用的通用CRUD控制器
// 每个实体用一份Schema描述自己的字段规则, 列表/读取/创建/合并更新/删除/
// 开关切换/进度更新全部走同一套实现
package resource

import (
	"gorm.io/gorm"

	"portfolio-terrace/api/pkg/response"
)

// DeriveFunc 写入前的派生字段钩子
// payload是本次提交的字段, existing是更新时的旧值(创建时为nil)
type DeriveFunc func(payload map[string]any, existing map[string]any)

// UniqueFunc 唯一性检查钩子, 在写入前与写入同属一次逻辑操作
// excludeID在更新时为当前记录ID, 创建时为0
type UniqueFunc func(db *gorm.DB, payload map[string]any, existing map[string]any, excludeID uint) *response.BusinessError

// FilterFunc 无法用等值条件表达的自定义过滤(如JSON数组包含)
type FilterFunc func(tx *gorm.DB, value string) *gorm.DB

// Schema 实体的字段规则描述
type Schema struct {
	// 资源名, 用于错误消息
	Name string

	// 允许客户端写入的字段(json名), 不在列表中的提交字段被忽略
	Updatable []string
	// 创建时必填的字段
	Required []string
	// 字符串字段的最大长度
	MaxLen map[string]int
	// 枚举字段的合法取值
	Enums map[string][]string
	// 以字符串"true"/"false"形式到达时需要归一化为bool的字段
	BoolFields []string
	// 需要归一化为整数的字段
	IntFields []string
	// JSON数组/对象字段, 表单提交时以JSON字符串到达, 需要解析
	JSONFields []string

	// 创建时未提交字段的默认值
	// 布尔默认值不走gorm的default标签: 零值字段会被INSERT省略,
	// 显式提交的false会被数据库默认值覆盖
	Defaults map[string]any

	// 识别的等值过滤查询参数; 值为空表示任意取值, 非空表示白名单
	// 未列出的查询参数一律忽略
	Filters map[string][]string
	// 自定义过滤
	CustomFilters map[string]FilterFunc
	// 固定排序, gorm order表达式
	SortKeys string

	// json名与列名不一致时的映射(如 order -> sort_order)
	ColumnOf map[string]string

	// 携带上传文件路径的字段, 空表示该实体无文件
	ImageField string
	// slug的来源字段, 非空时来源变化会重新生成slug
	SlugSource string
	// 公开读取时自增的计数字段
	ViewField string
	// 允许切换的布尔开关
	Toggleable []string
	// 百分比字段, 越界取值写入时钳制到[0,100]而不是报错
	ClampFields []string
	// 进度更新端点操作的字段
	ProgressField string

	// 实体自定义派生逻辑(如博客摘要/阅读时长)
	Derive DeriveFunc
	// 实体自定义唯一性检查(如分类name+section)
	CheckUnique UniqueFunc
}

// Column 返回payload字段对应的数据库列名
func (s *Schema) Column(field string) string {
	if s.ColumnOf != nil {
		if col, ok := s.ColumnOf[field]; ok {
			return col
		}
	}
	return field
}

// CanToggle 判断flag是否是本实体允许切换的开关
func (s *Schema) CanToggle(flag string) bool {
	for _, f := range s.Toggleable {
		if f == flag {
			return true
		}
	}
	return false
}
