package payroll

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sweldohq/payroll-reconciler/internal/hrapi"
)

type MockHRClient struct {
	mock.Mock
}

func (m *MockHRClient) GetSalaryRecords(ctx context.Context, userID int) ([]hrapi.Salary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hrapi.Salary), args.Error(1)
}

func (m *MockHRClient) GetEarnings(ctx context.Context, userID int) ([]hrapi.Earnings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hrapi.Earnings), args.Error(1)
}

func (m *MockHRClient) GetDeductions(ctx context.Context, userID int) ([]hrapi.Deductions, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hrapi.Deductions), args.Error(1)
}

func (m *MockHRClient) GetTotalOvertime(ctx context.Context, userID int) ([]hrapi.TotalOvertime, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hrapi.TotalOvertime), args.Error(1)
}

func (m *MockHRClient) GetOvertimeHours(ctx context.Context, userID int) ([]hrapi.OvertimeHoursEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hrapi.OvertimeHoursEntry), args.Error(1)
}

func (m *MockHRClient) CreateEarnings(ctx context.Context, record hrapi.Earnings) (*hrapi.Earnings, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hrapi.Earnings), args.Error(1)
}

func (m *MockHRClient) UpdateEarnings(ctx context.Context, id int, record hrapi.Earnings) error {
	args := m.Called(ctx, id, record)
	return args.Error(0)
}

func (m *MockHRClient) CreateDeductions(ctx context.Context, record hrapi.Deductions) (*hrapi.Deductions, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hrapi.Deductions), args.Error(1)
}

func (m *MockHRClient) UpdateDeductions(ctx context.Context, id int, record hrapi.Deductions) error {
	args := m.Called(ctx, id, record)
	return args.Error(0)
}

func (m *MockHRClient) CreateTotalOvertime(ctx context.Context, record hrapi.TotalOvertime) (*hrapi.TotalOvertime, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hrapi.TotalOvertime), args.Error(1)
}

func (m *MockHRClient) UpdateTotalOvertime(ctx context.Context, id int, record hrapi.TotalOvertime) error {
	args := m.Called(ctx, id, record)
	return args.Error(0)
}

func (m *MockHRClient) SSSContribution(ctx context.Context, salary float64) (float64, error) {
	args := m.Called(ctx, salary)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockHRClient) PhilhealthContribution(ctx context.Context, salary float64) (float64, error) {
	args := m.Called(ctx, salary)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockHRClient) PagibigContribution(ctx context.Context, salary float64) (float64, error) {
	args := m.Called(ctx, salary)
	return args.Get(0).(float64), args.Error(1)
}
