package identity_case

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockIdentityRepo struct {
	mock.Mock
}

func (m *MockIdentityRepo) FindCompanyAdmin(ctx context.Context, authUserID string) (*entity.Principal, *app_errors.AppError) {
	args := m.Called(ctx, authUserID)
	return args.Get(0).(*entity.Principal), args.Get(1).(*app_errors.AppError)
}

func (m *MockIdentityRepo) FindStaffByEmail(ctx context.Context, email string) (*entity.Principal, *app_errors.AppError) {
	args := m.Called(ctx, email)
	return args.Get(0).(*entity.Principal), args.Get(1).(*app_errors.AppError)
}

func (m *MockIdentityRepo) FindMember(ctx context.Context, companyID, principalID string) (*entity.Principal, *app_errors.AppError) {
	args := m.Called(ctx, companyID, principalID)
	return args.Get(0).(*entity.Principal), args.Get(1).(*app_errors.AppError)
}

func (m *MockIdentityRepo) GetDepartment(ctx context.Context, departmentID string) (*entity.Department, *app_errors.AppError) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).(*entity.Department), args.Get(1).(*app_errors.AppError)
}
