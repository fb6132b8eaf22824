package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/derive"
	"portfolio-terrace/api/pkg/response"
)

// Service 通用资源服务
// 串联仓储层、派生字段与文件生命周期, 九类实体共用
type Service[T any] struct {
	repo   *Repository[T]
	schema *Schema
	assets *asset.Manager
}

func NewService[T any](db *gorm.DB, schema *Schema, assets *asset.Manager) *Service[T] {
	return &Service[T]{
		repo:   NewRepository[T](db),
		schema: schema,
		assets: assets,
	}
}

// Repo 暴露仓储层给实体包的定制逻辑
func (s *Service[T]) Repo() *Repository[T] {
	return s.repo
}

func (s *Service[T]) Schema() *Schema {
	return s.schema
}

// ===== 查询 =====

// List 等值过滤+固定排序的列表查询
// force是路由强制的过滤条件(如公开博客只看已发布), query里未识别的参数一律忽略
func (s *Service[T]) List(query url.Values, force map[string]any) ([]T, int64, *response.BusinessError) {
	apply := func(tx *gorm.DB) *gorm.DB {
		for field, value := range force {
			tx = tx.Where(s.schema.Column(field)+" = ?", value)
		}
		for param, allowed := range s.schema.Filters {
			raw := query.Get(param)
			if raw == "" {
				continue
			}
			if len(allowed) > 0 && !contains(allowed, raw) {
				// 取值不在白名单内, 当作未识别参数忽略
				continue
			}
			tx = tx.Where(s.schema.Column(param)+" = ?", s.filterValue(param, raw))
		}
		for param, fn := range s.schema.CustomFilters {
			if raw := query.Get(param); raw != "" {
				tx = fn(tx, raw)
			}
		}
		return tx
	}

	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))

	items, err := s.repo.List(apply, s.schema.SortKeys, limit, offset)
	if err != nil {
		return nil, 0, response.InternalError("查询"+s.schema.Name+"列表失败", err)
	}

	total, err := s.repo.Count(func(tx *gorm.DB) *gorm.DB {
		for field, value := range force {
			tx = tx.Where(s.schema.Column(field)+" = ?", value)
		}
		return tx
	})
	if err != nil {
		return nil, 0, response.InternalError("统计"+s.schema.Name+"总数失败", err)
	}

	return items, total, nil
}

// Get 按标识查找: 支持slug的实体先按slug查, 失败再按数字ID查
func (s *Service[T]) Get(identifier string) (*T, *response.BusinessError) {
	if s.schema.SlugSource != "" {
		m, err := s.repo.ByColumn("slug", identifier)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.InternalError("查询"+s.schema.Name+"失败", err)
		}
	}

	id, err := strconv.ParseUint(identifier, 10, 64)
	if err != nil {
		// 既不是slug也不是数字ID, 统一按不存在处理
		return nil, response.NotFoundError(s.schema.Name + "不存在")
	}

	m, dbErr := s.repo.ByID(uint(id))
	if dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError(s.schema.Name + "不存在")
		}
		return nil, response.InternalError("查询"+s.schema.Name+"失败", dbErr)
	}
	return m, nil
}

// CountView 公开读取的副作用: 阅读量+1
// 允许并发下的非精确计数
func (s *Service[T]) CountView(m *T) {
	if s.schema.ViewField == "" {
		return
	}
	if id, ok := intValue(toMap(m)["id"]); ok {
		if err := s.repo.Increment(uint(id), s.schema.Column(s.schema.ViewField)); err != nil {
			// 计数失败不影响读取本身
			return
		}
	}
}

// ===== 写入 =====

// Create 校验+派生+落库
func (s *Service[T]) Create(payload map[string]any) (*T, *response.BusinessError) {
	fields := s.pick(payload)
	if err := s.coerce(fields); err != nil {
		return nil, err
	}
	if err := s.validate(fields, nil); err != nil {
		return nil, err
	}
	for k, v := range s.schema.Defaults {
		if _, ok := fields[k]; !ok {
			fields[k] = v
		}
	}
	s.derive(fields, nil)

	if s.schema.CheckUnique != nil {
		if err := s.schema.CheckUnique(s.repo.DB(), fields, nil, 0); err != nil {
			return nil, err
		}
	}

	m, err := fromMap[T](fields)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("参数格式错误"),
			response.WithError(err),
		)
	}

	if dbErr := s.repo.Create(m); dbErr != nil {
		return nil, response.InternalError("创建"+s.schema.Name+"失败", dbErr)
	}
	return m, nil
}

// Update 合并更新: 未提交的字段保留旧值
// 新文件路径已绑定进payload时, 持久化成功后再尽力释放旧文件
func (s *Service[T]) Update(identifier string, payload map[string]any) (*T, *response.BusinessError) {
	existing, berr := s.Get(identifier)
	if berr != nil {
		return nil, berr
	}
	existingMap := toMap(existing)

	fields := s.pick(payload)
	if err := s.coerce(fields); err != nil {
		return nil, err
	}
	if err := s.validate(fields, existingMap); err != nil {
		return nil, err
	}
	s.derive(fields, existingMap)

	if s.schema.CheckUnique != nil {
		id, _ := intValue(existingMap["id"])
		if err := s.schema.CheckUnique(s.repo.DB(), fields, existingMap, uint(id)); err != nil {
			return nil, err
		}
	}

	// 旧文件路径, 换图或清空时释放
	var stalePath string
	if s.schema.ImageField != "" {
		if newVal, ok := fields[s.schema.ImageField]; ok {
			oldVal, _ := existingMap[s.schema.ImageField].(string)
			if newStr, _ := newVal.(string); oldVal != "" && oldVal != newStr {
				stalePath = oldVal
			}
		}
	}

	// 合并: 提交的字段覆盖, 其余保留
	merged := existingMap
	for k, v := range fields {
		merged[k] = v
	}

	m, err := fromMap[T](merged)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("参数格式错误"),
			response.WithError(err),
		)
	}

	if dbErr := s.repo.Save(m); dbErr != nil {
		return nil, response.InternalError("更新"+s.schema.Name+"失败", dbErr)
	}

	// 记录已经落库, 旧文件删除失败只记日志
	if stalePath != "" {
		s.assets.Unbind(stalePath)
	}
	return m, nil
}

// Delete 删除记录并尽力释放其文件
func (s *Service[T]) Delete(identifier string) *response.BusinessError {
	existing, berr := s.Get(identifier)
	if berr != nil {
		return berr
	}
	existingMap := toMap(existing)
	id, _ := intValue(existingMap["id"])

	if dbErr := s.repo.Delete(uint(id)); dbErr != nil {
		return response.InternalError("删除"+s.schema.Name+"失败", dbErr)
	}

	if s.schema.ImageField != "" {
		if path, _ := existingMap[s.schema.ImageField].(string); path != "" {
			s.assets.Unbind(path)
		}
	}
	return nil
}

// Toggle 翻转布尔开关
func (s *Service[T]) Toggle(identifier, flag string) (*T, *response.BusinessError) {
	if !s.schema.CanToggle(flag) {
		return nil, response.ValidationError("不支持切换字段: " + flag)
	}

	existing, berr := s.Get(identifier)
	if berr != nil {
		return nil, berr
	}
	existingMap := toMap(existing)
	id, _ := intValue(existingMap["id"])
	cur, _ := existingMap[flag].(bool)

	if err := s.repo.UpdateColumn(uint(id), s.schema.Column(flag), !cur); err != nil {
		return nil, response.InternalError("更新"+s.schema.Name+"失败", err)
	}

	m, err := s.repo.ByID(uint(id))
	if err != nil {
		return nil, response.InternalError("查询"+s.schema.Name+"失败", err)
	}
	return m, nil
}

// UpdateProgress 更新进度, 越界值钳制到[0,100]
func (s *Service[T]) UpdateProgress(identifier string, value int) (*T, *response.BusinessError) {
	if s.schema.ProgressField == "" {
		return nil, response.ValidationError(s.schema.Name + "没有进度字段")
	}

	existing, berr := s.Get(identifier)
	if berr != nil {
		return nil, berr
	}
	id, _ := intValue(toMap(existing)["id"])

	if err := s.repo.UpdateColumn(uint(id), s.schema.Column(s.schema.ProgressField), clamp(value, 0, 100)); err != nil {
		return nil, response.InternalError("更新进度失败", err)
	}

	m, err := s.repo.ByID(uint(id))
	if err != nil {
		return nil, response.InternalError("查询"+s.schema.Name+"失败", err)
	}
	return m, nil
}

// ===== 字段处理 =====

// pick 只保留客户端可写字段, 未知字段静默丢弃
func (s *Service[T]) pick(payload map[string]any) map[string]any {
	fields := make(map[string]any, len(payload))
	for _, k := range s.schema.Updatable {
		if v, ok := payload[k]; ok {
			fields[k] = v
		}
	}
	return fields
}

// coerce 归一化字符串形式的布尔/整数值(表单提交都是字符串)
func (s *Service[T]) coerce(fields map[string]any) *response.BusinessError {
	for _, f := range s.schema.BoolFields {
		v, ok := fields[f]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case bool:
			// 已经是bool
		case string:
			switch strings.ToLower(val) {
			case "true":
				fields[f] = true
			case "false":
				fields[f] = false
			default:
				return response.ValidationError(fmt.Sprintf("字段 '%s' 必须是 true 或 false", f))
			}
		default:
			return response.ValidationError(fmt.Sprintf("字段 '%s' 必须是 true 或 false", f))
		}
	}

	for _, f := range s.schema.IntFields {
		v, ok := fields[f]
		if !ok {
			continue
		}
		if str, isStr := v.(string); isStr {
			n, err := strconv.Atoi(strings.TrimSpace(str))
			if err != nil {
				return response.ValidationError(fmt.Sprintf("字段 '%s' 必须是整数", f))
			}
			fields[f] = n
		}
	}

	for _, f := range s.schema.JSONFields {
		v, ok := fields[f]
		if !ok {
			continue
		}
		if str, isStr := v.(string); isStr {
			var parsed any
			if err := json.Unmarshal([]byte(str), &parsed); err != nil {
				return response.ValidationError(fmt.Sprintf("字段 '%s' 必须是合法的JSON", f))
			}
			fields[f] = parsed
		}
	}

	// 百分比字段钳制而不是报错
	for _, f := range s.schema.ClampFields {
		if v, ok := fields[f]; ok {
			if n, isInt := intValue(v); isInt {
				fields[f] = clamp(n, 0, 100)
			}
		}
	}
	return nil
}

// validate 必填/长度/枚举校验
// existing非nil表示合并更新, 必填检查只约束创建
func (s *Service[T]) validate(fields map[string]any, existing map[string]any) *response.BusinessError {
	if existing == nil {
		for _, f := range s.schema.Required {
			v, ok := fields[f]
			if !ok {
				return response.ValidationError(fmt.Sprintf("字段 '%s' 是必填项", f))
			}
			if str, isStr := v.(string); isStr && strings.TrimSpace(str) == "" {
				return response.ValidationError(fmt.Sprintf("字段 '%s' 是必填项", f))
			}
		}
	}

	for f, limit := range s.schema.MaxLen {
		if v, ok := fields[f]; ok {
			if str, isStr := v.(string); isStr && len(str) > limit {
				return response.ValidationError(fmt.Sprintf("字段 '%s' 长度不能超过 %d", f, limit))
			}
		}
	}

	for f, allowed := range s.schema.Enums {
		if v, ok := fields[f]; ok {
			str, isStr := v.(string)
			if !isStr || !contains(allowed, str) {
				return response.ValidationError(
					fmt.Sprintf("字段 '%s' 必须是以下值之一: %s", f, strings.Join(allowed, ", ")))
			}
		}
	}
	return nil
}

// derive 通用slug派生+实体自定义派生
func (s *Service[T]) derive(fields map[string]any, existing map[string]any) {
	if s.schema.SlugSource != "" {
		if src, ok := fields[s.schema.SlugSource].(string); ok {
			old := ""
			if existing != nil {
				old, _ = existing[s.schema.SlugSource].(string)
			}
			// 来源字段变化才重新生成
			if existing == nil || src != old {
				fields["slug"] = derive.Slugify(src)
			}
		}
	}

	if s.schema.Derive != nil {
		s.schema.Derive(fields, existing)
	}
}

// filterValue 过滤参数值的类型归一化
func (s *Service[T]) filterValue(param, raw string) any {
	for _, f := range s.schema.BoolFields {
		if f == param {
			return strings.EqualFold(raw, "true")
		}
	}
	return raw
}

// ===== map/struct 转换 =====

// toMap 用json标签把模型转成字段map
func toMap(m any) map[string]any {
	data, err := json.Marshal(m)
	if err != nil {
		return map[string]any{}
	}
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// fromMap 反向转换
func fromMap[T any](fields map[string]any) (*T, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var m T
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
