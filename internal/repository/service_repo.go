package repository

import (
	"context"
	"time"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          int64          `gorm:"column:id;primaryKey"`
	Name        datatypes.JSON `gorm:"column:name"`
	Description datatypes.JSON `gorm:"column:description"`
	Price       int64          `gorm:"column:price"`
	Duration    int            `gorm:"column:duration_minutes"`
	Category    *string        `gorm:"column:category"`
	ImageURL    *string        `gorm:"column:image_url"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) domain.Service {
	return domain.Service{
		ID:          m.ID,
		Name:        localizedFromJSON(m.Name),
		Description: localizedFromJSON(m.Description),
		Price:       m.Price,
		Duration:    m.Duration,
		Category:    deref(m.Category),
		ImageURL:    deref(m.ImageURL),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toServiceModel(s *domain.Service) serviceModel {
	return serviceModel{
		ID:          s.ID,
		Name:        localizedToJSON(s.Name),
		Description: localizedToJSON(s.Description),
		Price:       s.Price,
		Duration:    s.Duration,
		Category:    optional(s.Category),
		ImageURL:    optional(s.ImageURL),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	d := toDomainService(m)
	return &d, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	var rows []serviceModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).
		Model(&serviceModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":             m.Name,
			"description":      m.Description,
			"price":            m.Price,
			"duration_minutes": m.Duration,
			"category":         m.Category,
			"image_url":        m.ImageURL,
			"updated_at":       time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&serviceModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceRepository) DB() *gorm.DB {
	return r.db
}
