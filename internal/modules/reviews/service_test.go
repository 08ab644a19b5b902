package reviews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
	jwtsvc "github.com/f0xyris/psycho-therapy-sub001/internal/pkg/jwt"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *mockReviewRepo) List(ctx context.Context, approvedOnly bool) ([]domain.Review, error) {
	args := m.Called(ctx, approvedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_List_NonAdminSeesApprovedOnly(t *testing.T) {
	repo := new(mockReviewRepo)
	repo.On("List", mock.Anything, true).Return([]domain.Review{
		{ID: 1, Status: domain.ReviewStatusApproved},
	}, nil)

	service := NewService(repo)

	list, err := service.List(context.Background(), false)

	require.NoError(t, err)
	assert.Len(t, list, 1)
	repo.AssertCalled(t, "List", mock.Anything, true)
}

func TestService_List_AdminSeesEverything(t *testing.T) {
	repo := new(mockReviewRepo)
	repo.On("List", mock.Anything, false).Return([]domain.Review{
		{ID: 1, Status: domain.ReviewStatusApproved},
		{ID: 2, Status: domain.ReviewStatusPending},
	}, nil)

	service := NewService(repo)

	list, err := service.List(context.Background(), true)

	require.NoError(t, err)
	assert.Len(t, list, 2)
	repo.AssertCalled(t, "List", mock.Anything, false)
}

func TestService_Create_PendingWithUserID(t *testing.T) {
	repo := new(mockReviewRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(rv *domain.Review) bool {
		return rv.Status == domain.ReviewStatusPending &&
			rv.UserID != nil && *rv.UserID == 42 &&
			rv.Name == "Anna K"
	})).Return(nil)

	service := NewService(repo)

	rv, err := service.Create(context.Background(), &jwtsvc.Claims{UserID: 42}, CreateReviewRequest{
		Name:    "Anna K",
		Rating:  5,
		Comment: "Wonderful session",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusPending, rv.Status)
	repo.AssertExpectations(t)
}

func TestService_Create_NameDefaultsToClaims(t *testing.T) {
	repo := new(mockReviewRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(rv *domain.Review) bool {
		return rv.Name == "Demo User"
	})).Return(nil)

	service := NewService(repo)

	_, err := service.Create(context.Background(),
		&jwtsvc.Claims{UserID: 1, FirstName: "Demo", LastName: "User"},
		CreateReviewRequest{Rating: 4, Comment: "Nice"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Create_DemoNeverPersists(t *testing.T) {
	repo := new(mockReviewRepo)
	service := NewService(repo)

	claims := &jwtsvc.Claims{UserID: 999999, FirstName: "Demo", LastName: "User", IsDemo: true}

	first, err := service.Create(context.Background(), claims, CreateReviewRequest{Rating: 5, Comment: "demo review"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Nil(t, first.UserID)

	// Repeating the call must stay side-effect free.
	second, err := service.Create(context.Background(), claims, CreateReviewRequest{Rating: 5, Comment: "demo review"})
	require.NoError(t, err)
	assert.NotZero(t, second.ID)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidRating(t *testing.T) {
	service := NewService(new(mockReviewRepo))

	_, err := service.Create(context.Background(), &jwtsvc.Claims{UserID: 1}, CreateReviewRequest{
		Rating:  6,
		Comment: "too good",
	})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_SetStatus_NotFound(t *testing.T) {
	repo := new(mockReviewRepo)
	repo.On("SetStatus", mock.Anything, int64(404), domain.ReviewStatusApproved).
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	_, err := service.SetStatus(context.Background(), 404, domain.ReviewStatusApproved)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_SetStatus_Approves(t *testing.T) {
	repo := new(mockReviewRepo)
	repo.On("SetStatus", mock.Anything, int64(3), domain.ReviewStatusApproved).
		Return(&domain.Review{ID: 3, Status: domain.ReviewStatusApproved}, nil)

	service := NewService(repo)

	rv, err := service.SetStatus(context.Background(), 3, domain.ReviewStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusApproved, rv.Status)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(mockReviewRepo)
	repo.On("Delete", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)

	service := NewService(repo)

	assert.ErrorIs(t, service.Delete(context.Background(), 404), ErrNotFound)
}
