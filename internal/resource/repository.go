package resource

import (
	"gorm.io/gorm"
)

// Repository 基于gorm的通用仓储层
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB 暴露底层连接给唯一性检查等钩子
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// List 按条件查询并排序, 零匹配返回空切片
func (r *Repository[T]) List(apply func(tx *gorm.DB) *gorm.DB, order string, limit, offset int) ([]T, error) {
	items := make([]T, 0)
	tx := r.db.Model(new(T))
	if apply != nil {
		tx = apply(tx)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	err := tx.Find(&items).Error
	return items, err
}

// Count 统计总数
func (r *Repository[T]) Count(apply func(tx *gorm.DB) *gorm.DB) (int64, error) {
	var total int64
	tx := r.db.Model(new(T))
	if apply != nil {
		tx = apply(tx)
	}
	err := tx.Count(&total).Error
	return total, err
}

func (r *Repository[T]) ByID(id uint) (*T, error) {
	var m T
	err := r.db.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ByColumn 按单列等值查询第一条
func (r *Repository[T]) ByColumn(column string, value any) (*T, error) {
	var m T
	err := r.db.Where(column+" = ?", value).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository[T]) Create(m *T) error {
	return r.db.Create(m).Error
}

func (r *Repository[T]) Save(m *T) error {
	return r.db.Save(m).Error
}

func (r *Repository[T]) Delete(id uint) error {
	return r.db.Delete(new(T), id).Error
}

// UpdateColumn 单列更新
func (r *Repository[T]) UpdateColumn(id uint, column string, value any) error {
	return r.db.Model(new(T)).Where("id = ?", id).Update(column, value).Error
}

// Increment 计数字段自增1
// 非精确一次: 并发读者重复计数可以接受
func (r *Repository[T]) Increment(id uint, column string) error {
	return r.db.Model(new(T)).Where("id = ?", id).
		Update(column, gorm.Expr(column+" + 1")).Error
}
