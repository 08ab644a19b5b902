package repository

import (
	"context"
	"time"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    *int64    `gorm:"column:user_id"`
	ServiceID *int64    `gorm:"column:service_id"`
	Name      *string   `gorm:"column:name"`
	Rating    int       `gorm:"column:rating"`
	Comment   string    `gorm:"column:comment"`
	Status    string    `gorm:"column:status;default:pending"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) domain.Review {
	return domain.Review{
		ID:        m.ID,
		UserID:    m.UserID,
		ServiceID: m.ServiceID,
		Name:      deref(m.Name),
		Rating:    m.Rating,
		Comment:   m.Comment,
		Status:    domain.ReviewStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	return reviewModel{
		ID:        rv.ID,
		UserID:    rv.UserID,
		ServiceID: rv.ServiceID,
		Name:      optional(rv.Name),
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		Status:    string(rv.Status),
		CreatedAt: rv.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	d := toDomainReview(m)
	return &d, nil
}

// List returns reviews newest first. With approvedOnly the visibility
// filter for anonymous and non-admin callers is applied.
func (r *ReviewRepository) List(ctx context.Context, approvedOnly bool) ([]domain.Review, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if approvedOnly {
		q = q.Where("status = ?", string(domain.ReviewStatusApproved))
	}

	var rows []reviewModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error) {
	tx := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&reviewModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) DB() *gorm.DB {
	return r.db
}
