package calendar

import (
	"time"

	"shiftboard/internal/model"
)

// UnknownEmployeeName 员工目录中找不到对应 ID 时的占位名称
const UnknownEmployeeName = "Unknown"

// ShiftIndex 班次读模型：按员工、按日期分组
// 不维护增量索引，每次查询都从完整集合重新计算；日期无效的班次不参与任何分组
type ShiftIndex struct {
	shifts    []model.Shift
	employees map[string]model.Employee
}

// NewShiftIndex 基于当前班次集合与员工目录构建索引
func NewShiftIndex(shifts []model.Shift, employees []model.Employee) *ShiftIndex {
	byID := make(map[string]model.Employee, len(employees))
	for _, e := range employees {
		if _, ok := byID[e.EmployeeID]; !ok {
			byID[e.EmployeeID] = e
		}
	}
	return &ShiftIndex{shifts: shifts, employees: byID}
}

// ShiftsOn 返回 date 当天的班次，保持输入顺序
func (x *ShiftIndex) ShiftsOn(date time.Time) []model.Shift {
	if date.IsZero() {
		return nil
	}
	var result []model.Shift
	for _, s := range x.shifts {
		if SameDay(s.Date, date) {
			result = append(result, s)
		}
	}
	return result
}

// EmployeesOn 返回 date 当天至少有一个班次的员工（去重，按首次出现顺序）
func (x *ShiftIndex) EmployeesOn(date time.Time) []model.Employee {
	seen := make(map[string]bool)
	var result []model.Employee
	for _, s := range x.ShiftsOn(date) {
		if seen[s.EmployeeID] {
			continue
		}
		seen[s.EmployeeID] = true
		result = append(result, x.Employee(s.EmployeeID))
	}
	return result
}

// ShiftsByEmployeeOn 返回 date 当天 employeeID → 班次列表（同人多班次，如分段班）
func (x *ShiftIndex) ShiftsByEmployeeOn(date time.Time) map[string][]model.Shift {
	grouped := make(map[string][]model.Shift)
	for _, s := range x.ShiftsOn(date) {
		grouped[s.EmployeeID] = append(grouped[s.EmployeeID], s)
	}
	return grouped
}

// ShiftsForEmployee 返回某员工全部有效日期的班次
func (x *ShiftIndex) ShiftsForEmployee(employeeID string) []model.Shift {
	var result []model.Shift
	for _, s := range x.shifts {
		if s.EmployeeID == employeeID && !s.Date.IsZero() {
			result = append(result, s)
		}
	}
	return result
}

// Employee 按 ID 查找员工，找不到时返回名称为 Unknown 的占位
func (x *ShiftIndex) Employee(id string) model.Employee {
	if e, ok := x.employees[id]; ok {
		return e
	}
	return model.Employee{EmployeeID: id, Name: UnknownEmployeeName}
}
