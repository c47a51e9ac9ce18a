package service

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"shiftboard/internal/model"
	"shiftboard/internal/repository"
	pkgerrors "shiftboard/pkg/errors"
)

var errStoreDown = errors.New("store unavailable")

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees []model.Employee
	fail      bool
}

func newMockEmployeeRepo(employees ...model.Employee) *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: employees}
}

func (m *mockEmployeeRepo) ListByOrganization(_ context.Context, orgID string) ([]model.Employee, error) {
	if m.fail {
		return nil, errStoreDown
	}
	var result []model.Employee
	for _, e := range m.employees {
		if e.OrganizationID == "" || e.OrganizationID == orgID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, orgID, employeeID string) (*model.Employee, error) {
	list, err := m.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].EmployeeID == employeeID {
			return &list[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock ShiftRepository ──

// mockShiftRepo 按插入顺序保存班次
type mockShiftRepo struct {
	mu     sync.Mutex
	shifts []model.Shift
	fail   bool
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	m.shifts = append(m.shifts, *shift)
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, orgID, shiftID string) (*model.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	for _, s := range m.shifts {
		if s.OrganizationID == orgID && s.ShiftID == shiftID {
			cp := s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) ListByOrganization(_ context.Context, orgID string) ([]model.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	var result []model.Shift
	for _, s := range m.shifts {
		if s.OrganizationID == orgID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) ListByEmployee(ctx context.Context, orgID, employeeID string) ([]model.Shift, error) {
	all, err := m.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	var result []model.Shift
	for _, s := range all {
		if s.EmployeeID == employeeID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	for i := range m.shifts {
		if m.shifts[i].ShiftID == shift.ShiftID && m.shifts[i].OrganizationID == shift.OrganizationID {
			m.shifts[i] = *shift
		}
	}
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, orgID, shiftID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return 0, errStoreDown
	}
	for i, s := range m.shifts {
		if s.OrganizationID == orgID && s.ShiftID == shiftID {
			m.shifts = append(m.shifts[:i], m.shifts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockShiftRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.shifts)
}

// ── Mock HolidayRepository ──

type mockHolidayRepo struct {
	holidays []model.Holiday
	fail     bool
}

func newMockHolidayRepo(holidays ...model.Holiday) *mockHolidayRepo {
	return &mockHolidayRepo{holidays: holidays}
}

func (m *mockHolidayRepo) ListByOrganization(_ context.Context, orgID string) ([]model.Holiday, error) {
	if m.fail {
		return nil, errStoreDown
	}
	var result []model.Holiday
	for _, h := range m.holidays {
		if h.OrganizationID == "" || h.OrganizationID == orgID {
			result = append(result, h)
		}
	}
	return result, nil
}

func (m *mockHolidayRepo) GetByID(_ context.Context, orgID, holidayID string) (*model.Holiday, error) {
	for i := range m.holidays {
		if m.holidays[i].OrganizationID == orgID && m.holidays[i].HolidayID == holidayID {
			cp := m.holidays[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHolidayRepo) BatchUpsert(_ context.Context, holidays []model.Holiday) error {
	if m.fail {
		return errStoreDown
	}
	m.holidays = append(m.holidays, holidays...)
	return nil
}

func (m *mockHolidayRepo) Update(_ context.Context, holiday *model.Holiday) error {
	for i := range m.holidays {
		if m.holidays[i].HolidayID != holiday.HolidayID {
			continue
		}
		if m.holidays[i].Version != holiday.Version {
			return pkgerrors.ErrOptimisticLock
		}
		holiday.Version++
		m.holidays[i] = *holiday
		return nil
	}
	return pkgerrors.ErrOptimisticLock
}

func (m *mockHolidayRepo) Delete(_ context.Context, _, holidayID string) error {
	for i := range m.holidays {
		if m.holidays[i].HolidayID == holidayID {
			m.holidays = append(m.holidays[:i], m.holidays[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── 测试夹具 ──

type testRepos struct {
	employees *mockEmployeeRepo
	shifts    *mockShiftRepo
	holidays  *mockHolidayRepo
}

func newTestRepository(employees []model.Employee, holidays []model.Holiday) (*repository.Repository, *testRepos) {
	r := &testRepos{
		employees: newMockEmployeeRepo(employees...),
		shifts:    newMockShiftRepo(),
		holidays:  newMockHolidayRepo(holidays...),
	}
	return &repository.Repository{
		Employee: r.employees,
		Shift:    r.shifts,
		Holiday:  r.holidays,
	}, r
}
