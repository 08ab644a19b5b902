package catalog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
)

type mockCourseRepo struct {
	mock.Mock
}

func (m *mockCourseRepo) List(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *mockCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCourseRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockServiceRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeCache is an in-memory stand-in for the redis cache.
type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func validUpsert() UpsertItemRequest {
	return UpsertItemRequest{
		Name:     map[string]string{"en": "Relaxing Massage"},
		Price:    90000,
		Duration: 60,
		Category: "massage",
	}
}

func TestService_ListCourses_CachesResult(t *testing.T) {
	courses := new(mockCourseRepo)
	courses.On("List", mock.Anything).Return([]domain.Course{{ID: 1}}, nil).Once()

	service := NewService(courses, new(mockServiceRepo), newFakeCache())

	first, err := service.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Second read is served from cache, the store is hit once.
	second, err := service.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	courses.AssertNumberOfCalls(t, "List", 1)
}

func TestService_ListCourses_NoCacheConfigured(t *testing.T) {
	courses := new(mockCourseRepo)
	courses.On("List", mock.Anything).Return([]domain.Course{{ID: 1}}, nil).Twice()

	service := NewService(courses, new(mockServiceRepo), nil)

	_, err := service.ListCourses(context.Background())
	require.NoError(t, err)
	_, err = service.ListCourses(context.Background())
	require.NoError(t, err)

	courses.AssertNumberOfCalls(t, "List", 2)
}

func TestService_CreateCourse_InvalidatesCache(t *testing.T) {
	courses := new(mockCourseRepo)
	courses.On("List", mock.Anything).Return([]domain.Course{{ID: 1}}, nil)
	courses.On("Create", mock.Anything, mock.Anything).Return(nil)

	c := newFakeCache()
	service := NewService(courses, new(mockServiceRepo), c)

	_, err := service.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Contains(t, c.data, coursesCacheKey)

	_, err = service.CreateCourse(context.Background(), validUpsert())
	require.NoError(t, err)
	assert.NotContains(t, c.data, coursesCacheKey)
}

func TestService_CreateCourse_RequiresName(t *testing.T) {
	service := NewService(new(mockCourseRepo), new(mockServiceRepo), nil)

	req := validUpsert()
	req.Name = nil

	_, err := service.CreateCourse(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_GetCourse_NotFound(t *testing.T) {
	courses := new(mockCourseRepo)
	courses.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(courses, new(mockServiceRepo), nil)

	_, err := service.GetCourse(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateService_NotFound(t *testing.T) {
	services := new(mockServiceRepo)
	services.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	service := NewService(new(mockCourseRepo), services, nil)

	_, err := service.UpdateService(context.Background(), 404, validUpsert())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteService_InvalidatesCache(t *testing.T) {
	services := new(mockServiceRepo)
	services.On("List", mock.Anything).Return([]domain.Service{{ID: 2}}, nil)
	services.On("Delete", mock.Anything, int64(2)).Return(nil)

	c := newFakeCache()
	service := NewService(new(mockCourseRepo), services, c)

	_, err := service.ListServices(context.Background())
	require.NoError(t, err)
	assert.Contains(t, c.data, servicesCacheKey)

	require.NoError(t, service.DeleteService(context.Background(), 2))
	assert.NotContains(t, c.data, servicesCacheKey)
}
