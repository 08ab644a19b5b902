package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

type courseModel struct {
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

func (courseModel) TableName() string { return "courses" }

func localizedToJSON(t domain.LocalizedText) datatypes.JSON {
	if len(t) == 0 {
		return datatypes.JSON([]byte("{}"))
	}
	b, err := json.Marshal(t)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(b)
}

func localizedFromJSON(raw datatypes.JSON) domain.LocalizedText {
	out := domain.LocalizedText{}
	if len(raw) == 0 {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}

func toDomainCourse(m courseModel) domain.Course {
	return domain.Course{
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

func toCourseModel(c *domain.Course) courseModel {
	return courseModel{
		ID:          c.ID,
		Name:        localizedToJSON(c.Name),
		Description: localizedToJSON(c.Description),
		Price:       c.Price,
		Duration:    c.Duration,
		Category:    optional(c.Category),
		ImageURL:    optional(c.ImageURL),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	m := toCourseModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = toDomainCourse(m)
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	var m courseModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	d := toDomainCourse(m)
	return &d, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	var rows []courseModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Course, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCourse(m))
	}
	return out, nil
}

func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) error {
	m := toCourseModel(c)
	tx := r.db.WithContext(ctx).
		Model(&courseModel{}).
		Where("id = ?", c.ID).
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

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&courseModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CourseRepository) DB() *gorm.DB {
	return r.db
}
