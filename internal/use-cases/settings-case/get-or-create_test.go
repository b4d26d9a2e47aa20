package settings_case

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	use_cases "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newTestService(repo *MockSettingsRepo, c *use_cases.MockCache) *SettingsService {
	return &SettingsService{
		repo:     repo,
		cache:    c,
		defaults: entity.DefaultSettingsDefaults(),
		ttl:      time.Minute,
		now:      func() time.Time { return fixedNow },
	}
}

// Test cached settings are served without touching the database
func TestGetOrCreate_CacheHit(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSettingsRepo)
	c := use_cases.NewMockCache()
	service := newTestService(repo, c)

	stored := entity.DefaultSettingsDefaults().ForCompany("s-1", "company-1", fixedNow)
	require.Nil(t, c.Set(ctx, "task_settings:company-1", stored, time.Minute))

	settings, err := service.GetOrCreate(ctx, "company-1")

	assert.Nil(t, err)
	assert.Equal(t, "s-1", settings.ID)
	repo.AssertNotCalled(t, "GetByCompany", mock.Anything, mock.Anything)
}

// Test existing row is read and cached
func TestGetOrCreate_ExistingRow(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSettingsRepo)
	c := use_cases.NewMockCache()
	service := newTestService(repo, c)

	stored := entity.DefaultSettingsDefaults().ForCompany("s-1", "company-1", fixedNow)
	repo.On("GetByCompany", ctx, "company-1").Return(stored, (*app_errors.AppError)(nil)).Once()

	settings, err := service.GetOrCreate(ctx, "company-1")

	assert.Nil(t, err)
	assert.Equal(t, stored, settings)
	assert.True(t, c.Has("task_settings:company-1"))
	repo.AssertNotCalled(t, "InsertIfAbsent", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

// Test first access creates the row with defaults
func TestGetOrCreate_FirstAccessCreatesDefaults(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSettingsRepo)
	service := newTestService(repo, use_cases.NewMockCache())

	inserted := &entity.IntegrationSettingsEntity{}
	repo.On("GetByCompany", ctx, "company-1").Return((*entity.IntegrationSettingsEntity)(nil), (*app_errors.AppError)(nil)).Once()
	repo.On("InsertIfAbsent", ctx, mock.AnythingOfType("*entity.IntegrationSettingsEntity")).
		Run(func(args mock.Arguments) { *inserted = *args.Get(1).(*entity.IntegrationSettingsEntity) }).
		Return(true, (*app_errors.AppError)(nil)).Once()
	repo.On("GetByCompany", ctx, "company-1").Return(inserted, (*app_errors.AppError)(nil)).Once()

	settings, err := service.GetOrCreate(ctx, "company-1")

	require.Nil(t, err)
	assert.Equal(t, "company-1", settings.CompanyID)
	assert.True(t, settings.AllowEmployeeTaskCreation)
	assert.True(t, settings.AllowIntraDepartmentAssignments)
	assert.False(t, settings.AllowMultiTaskAssignment)
	assert.Equal(t, entity.RedirectionTeamLead, settings.CrossDepartmentRedirection)
	repo.AssertExpectations(t)
}

// Test losing the insert race re-reads the winner's row instead of failing
func TestGetOrCreate_LostRaceRereads(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSettingsRepo)
	service := newTestService(repo, use_cases.NewMockCache())

	winner := entity.DefaultSettingsDefaults().ForCompany("winner", "company-1", fixedNow)
	winner.AllowMultiTaskAssignment = true

	repo.On("GetByCompany", ctx, "company-1").Return((*entity.IntegrationSettingsEntity)(nil), (*app_errors.AppError)(nil)).Once()
	repo.On("InsertIfAbsent", ctx, mock.Anything).Return(false, (*app_errors.AppError)(nil)).Once()
	repo.On("GetByCompany", ctx, "company-1").Return(winner, (*app_errors.AppError)(nil)).Once()

	settings, err := service.GetOrCreate(ctx, "company-1")

	assert.Nil(t, err)
	assert.Equal(t, "winner", settings.ID)
	assert.True(t, settings.AllowMultiTaskAssignment)
	repo.AssertExpectations(t)
}

// Test cache failures degrade to the database
func TestGetOrCreate_CacheDown(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSettingsRepo)
	c := use_cases.NewMockCache()
	c.GetFn = func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
		return false, app_errors.NewInternal(assert.AnError)
	}
	c.SetFn = func(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError {
		return app_errors.NewInternal(assert.AnError)
	}
	service := newTestService(repo, c)

	stored := entity.DefaultSettingsDefaults().ForCompany("s-1", "company-1", fixedNow)
	repo.On("GetByCompany", ctx, "company-1").Return(stored, (*app_errors.AppError)(nil))

	settings, err := service.GetOrCreate(ctx, "company-1")

	assert.Nil(t, err)
	assert.Equal(t, "s-1", settings.ID)
}

// uniqueSettingsRepo verhält sich wie eine Tabelle mit UNIQUE(company_id).
type uniqueSettingsRepo struct {
	mu      sync.Mutex
	rows    map[string]entity.IntegrationSettingsEntity
	inserts int
}

func (r *uniqueSettingsRepo) GetByCompany(ctx context.Context, companyID string) (*entity.IntegrationSettingsEntity, *app_errors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[companyID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *uniqueSettingsRepo) InsertIfAbsent(ctx context.Context, s *entity.IntegrationSettingsEntity) (bool, *app_errors.AppError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[s.CompanyID]; ok {
		return false, nil
	}
	r.rows[s.CompanyID] = *s
	r.inserts++
	return true, nil
}

func (r *uniqueSettingsRepo) Update(ctx context.Context, s *entity.IntegrationSettingsEntity) *app_errors.AppError {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[s.CompanyID] = *s
	return nil
}

// Test concurrent first access yields one row and identical values for every caller
func TestGetOrCreate_ConcurrentFirstAccess(t *testing.T) {
	ctx := context.Background()

	repo := &uniqueSettingsRepo{rows: map[string]entity.IntegrationSettingsEntity{}}
	service := &SettingsService{
		repo:     repo,
		cache:    use_cases.NewMockCache(),
		defaults: entity.DefaultSettingsDefaults(),
		ttl:      time.Minute,
		now:      func() time.Time { return fixedNow },
	}

	const callers = 8
	results := make([]*entity.IntegrationSettingsEntity, callers)
	errs := make([]*app_errors.AppError, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = service.GetOrCreate(ctx, "company-1")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, repo.inserts)
	assert.Len(t, repo.rows, 1)
	for i := 0; i < callers; i++ {
		require.Nil(t, errs[i])
		assert.Equal(t, results[0].ID, results[i].ID)
		assert.Equal(t, results[0].CrossDepartmentRedirection, results[i].CrossDepartmentRedirection)
		assert.Equal(t, results[0].AllowEmployeeTaskCreation, results[i].AllowEmployeeTaskCreation)
		assert.Equal(t, results[0].AllowMultiTaskAssignment, results[i].AllowMultiTaskAssignment)
	}
}
