package catalog

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"productCatalog/internal/domain"
	"productCatalog/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// stepClock — часы, которые сдвигаются на step при каждом вызове.
func stepClock(step time.Duration) func() time.Time {
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIProductRepository(ctrl)
	products := []domain.Product{{ID: "a"}, {ID: "b"}}
	mockRepo.EXPECT().List(gomock.Any(), []string{"name"}).Return(products, int64(250), nil)

	uc := New(mockRepo, nil, newTestLogger())
	uc.now = stepClock(3 * time.Millisecond)

	page, err := uc.ListProducts(context.Background(), []string{"name"})

	require.NoError(t, err)
	assert.Equal(t, products, page.Products)
	assert.Equal(t, int64(250), page.Count, "count — полное число совпадений, а не размер страницы")
	assert.Equal(t, 3*time.Millisecond, page.Elapsed)
}

// Репозиторий ограничивает выборку сам, но страница не вырастет больше лимита, даже если он ошибся.
func TestListProducts_NeverMoreThanPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIProductRepository(ctrl)
	mockRepo.EXPECT().List(gomock.Any(), gomock.Nil()).Return(make([]domain.Product, 150), int64(150), nil)

	uc := New(mockRepo, nil, newTestLogger())

	page, err := uc.ListProducts(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, page.Products, domain.MaxPageSize)
	assert.Equal(t, int64(150), page.Count)
}

func TestListProducts_QueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIProductRepository(ctrl)
	qerr := &domain.QueryError{Op: "find products", Err: errors.New("connection reset")}
	mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), qerr)

	uc := New(mockRepo, nil, newTestLogger())

	page, err := uc.ListProducts(context.Background(), nil)

	assert.Nil(t, page)
	var target *domain.QueryError
	assert.ErrorAs(t, err, &target)
}

func TestGetProduct_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIProductRepository(ctrl)
	mockCache := mocks.NewMockIProductCache(ctrl)
	cached := &domain.Product{ID: "abc", Name: "cached"}
	mockCache.EXPECT().Get(gomock.Any(), "abc").Return(cached, true, nil)
	// репозиторий не вызывается

	uc := New(mockRepo, mockCache, newTestLogger())

	p, _, err := uc.GetProduct(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, cached, p)
}

func TestGetProduct_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIProductRepository(ctrl)
	mockCache := mocks.NewMockIProductCache(ctrl)
	stored := &domain.Product{ID: "abc", Name: "stored"}

	gomock.InOrder(
		mockCache.EXPECT().Get(gomock.Any(), "abc").Return(nil, false, nil),
		mockRepo.EXPECT().Get(gomock.Any(), "abc").Return(stored, nil),
		mockCache.EXPECT().Set(gomock.Any(), *stored).Return(nil),
	)

	uc := New(mockRepo, mockCache, newTestLogger())
	uc.now = stepClock(time.Millisecond)

	p, elapsed, err := uc.GetProduct(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, stored, p)
	assert.Equal(t, time.Millisecond, elapsed)
}

func TestGetProduct_CacheErrorsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIProductRepository(ctrl)
	mockCache := mocks.NewMockIProductCache(ctrl)
	stored := &domain.Product{ID: "abc"}

	mockCache.EXPECT().Get(gomock.Any(), "abc").Return(nil, false, errors.New("redis down"))
	mockRepo.EXPECT().Get(gomock.Any(), "abc").Return(stored, nil)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	uc := New(mockRepo, mockCache, newTestLogger())

	p, _, err := uc.GetProduct(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, stored, p)
}

func TestGetProduct_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIProductRepository(ctrl)
	mockCache := mocks.NewMockIProductCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), "gone").Return(nil, false, nil)
	mockRepo.EXPECT().Get(gomock.Any(), "gone").Return(nil, domain.ErrProductNotFound)
	// промах не кэшируется: Set не ожидается

	uc := New(mockRepo, mockCache, newTestLogger())

	p, _, err := uc.GetProduct(context.Background(), "gone")

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIProductRepository(ctrl)
	mockRepo.EXPECT().Ping(gomock.Any()).Return(errors.New("no primary"))

	uc := New(mockRepo, nil, newTestLogger())

	assert.Error(t, uc.Ready(context.Background()))
}
