package vacation

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, v *Vacation) error
	FindAll(ctx context.Context) ([]Vacation, error)
	FindByID(ctx context.Context, id string) (*Vacation, error)
	Update(ctx context.Context, v *Vacation) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, v *Vacation) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Vacation, error) {
	var vacations []Vacation
	err := r.db.WithContext(ctx).
		Order("planned_year ASC, planned_month ASC, employee_name ASC").
		Find(&vacations).Error
	return vacations, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Vacation, error) {
	var v Vacation
	err := r.db.WithContext(ctx).
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *repository) Update(ctx context.Context, v *Vacation) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Vacation{}, "id = ?", id).Error
}

func (r *repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&Vacation{}).Error
}
