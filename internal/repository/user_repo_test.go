package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/f0xyris/psycho-therapy-sub001/internal/database"
	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
)

var memDBCounter int

// testDB opens a fresh in-memory sqlite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	memDBCounter++
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", memDBCounter)

	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	u := &domain.User{
		Email:        "anna@example.com",
		PasswordHash: "hash",
		FirstName:    "Anna",
		LastName:     "Kowalska",
	}
	require.NoError(t, repo.Create(ctx, u))
	require.NotZero(t, u.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", byID.Email)
	assert.False(t, byID.IsAdmin)

	byEmail, err := repo.GetByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	_, err := repo.GetByID(context.Background(), 12345)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Email: "known@example.com"}))

	exists, err := repo.ExistsByEmail(ctx, "known@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "unknown@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_SetAdmin(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	u := &domain.User{Email: "promote@example.com"}
	require.NoError(t, repo.Create(ctx, u))

	promoted, err := repo.SetAdmin(ctx, u.ID, true)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	demoted, err := repo.SetAdmin(ctx, u.ID, false)
	require.NoError(t, err)
	assert.False(t, demoted.IsAdmin)
}

func TestUserRepository_SetAdmin_UnknownID(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	_, err := repo.SetAdmin(context.Background(), 404, true)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_LinkGoogleAccount(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	u := &domain.User{Email: "link@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.LinkGoogleAccount(ctx, u.ID, "g-123", "https://pic"))

	linked, err := repo.GetByGoogleID(ctx, "g-123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, linked.ID)
	assert.Equal(t, "https://pic", linked.ProfileImageURL)
}

func TestReviewRepository_ListVisibility(t *testing.T) {
	db := testDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Review{Name: "A", Rating: 5, Comment: "approved one", Status: domain.ReviewStatusApproved}))
	require.NoError(t, repo.Create(ctx, &domain.Review{Name: "B", Rating: 4, Comment: "pending one", Status: domain.ReviewStatusPending}))

	visible, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, domain.ReviewStatusApproved, visible[0].Status)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReviewRepository_SetStatus(t *testing.T) {
	repo := NewReviewRepository(testDB(t))
	ctx := context.Background()

	rv := &domain.Review{Name: "A", Rating: 5, Comment: "pending", Status: domain.ReviewStatusPending}
	require.NoError(t, repo.Create(ctx, rv))

	updated, err := repo.SetStatus(ctx, rv.ID, domain.ReviewStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusApproved, updated.Status)

	_, err = repo.SetStatus(ctx, 9999, domain.ReviewStatusApproved)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCourseRepository_LocalizedRoundTrip(t *testing.T) {
	repo := NewCourseRepository(testDB(t))
	ctx := context.Background()

	course := &domain.Course{
		Name:        domain.LocalizedText{"en": "Laser Basics", "uk": "Основи лазера"},
		Description: domain.LocalizedText{"en": "Intro course"},
		Price:       450000,
		Duration:    960,
	}
	require.NoError(t, repo.Create(ctx, course))

	got, err := repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laser Basics", got.Name.Get("en"))
	assert.Equal(t, "Основи лазера", got.Name.Get("uk"))
	// missing language falls back to english
	assert.Equal(t, "Intro course", got.Description.Get("pl"))
}

func TestAppointmentRepository_ListByUser(t *testing.T) {
	repo := NewAppointmentRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Appointment{UserID: 1, Status: domain.AppointmentPending}))
	require.NoError(t, repo.Create(ctx, &domain.Appointment{UserID: 2, Status: domain.AppointmentPending}))

	mine, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].UserID)
}
