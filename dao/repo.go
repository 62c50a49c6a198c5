package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用 DAO，按实体嵌入使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// FindByWhere 查询单条，不存在返回 nil
func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAll(ctx context.Context, where string, args ...any) ([]*T, error) {
	var items []*T
	db := r.Db.WithContext(ctx)
	if where != "" {
		db = db.Where(where, args...)
	}
	err := db.Find(&items).Error
	return items, err
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete 按条件删除，返回删除行数
func (r Repo[T]) Delete(ctx context.Context, where string, args ...any) (int64, error) {
	res := r.Db.WithContext(ctx).Where(where, args...).Delete(new(T))
	return res.RowsAffected, res.Error
}

func (r Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}
