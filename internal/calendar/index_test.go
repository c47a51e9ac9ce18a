package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftboard/internal/model"
)

func TestHolidayIndex_FirstMatchWins(t *testing.T) {
	idx := NewHolidayIndex([]model.Holiday{
		{Name: "Independence Day", Date: day(2024, time.July, 4)},
		{Name: "Duplicate", Date: day(2024, time.July, 4)},
		{Name: "Broken"},
	})

	h, ok := idx.HolidayFor(time.Date(2024, time.July, 4, 3, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "Independence Day", h.Name)

	assert.False(t, idx.IsHoliday(day(2024, time.July, 5)))
	assert.False(t, idx.IsHoliday(time.Time{}), "无效日期不匹配任何节假日")

	var nilIdx *HolidayIndex
	assert.False(t, nilIdx.IsHoliday(day(2024, time.July, 4)))
}

func TestShiftIndex_Grouping(t *testing.T) {
	employees := []model.Employee{{EmployeeID: "e1", Name: "Ann"}, {EmployeeID: "e2", Name: "Bob"}}
	shifts := []model.Shift{
		{ShiftID: "s1", EmployeeID: "e1", Date: day(2024, time.July, 4), StartTime: "09:00", EndTime: "12:00"},
		{ShiftID: "s2", EmployeeID: "e2", Date: day(2024, time.July, 4)},
		{ShiftID: "s3", EmployeeID: "e1", Date: day(2024, time.July, 4), StartTime: "14:00", EndTime: "18:00"},
		{ShiftID: "s4", EmployeeID: "e1", Date: day(2024, time.July, 5)},
		{ShiftID: "s5", EmployeeID: "ghost", Date: day(2024, time.July, 5)},
		{ShiftID: "s6", EmployeeID: "e1"},
	}
	idx := NewShiftIndex(shifts, employees)

	on := idx.ShiftsOn(day(2024, time.July, 4))
	require.Len(t, on, 3)
	assert.Equal(t, []string{"s1", "s2", "s3"}, []string{on[0].ShiftID, on[1].ShiftID, on[2].ShiftID})

	emps := idx.EmployeesOn(day(2024, time.July, 4))
	require.Len(t, emps, 2, "同一员工只出现一次")
	assert.Equal(t, "Ann", emps[0].Name)

	grouped := idx.ShiftsByEmployeeOn(day(2024, time.July, 4))
	assert.Len(t, grouped["e1"], 2, "分段班同日两条")
	assert.Len(t, grouped["e2"], 1)

	emps = idx.EmployeesOn(day(2024, time.July, 5))
	require.Len(t, emps, 2)
	assert.Equal(t, UnknownEmployeeName, emps[1].Name)
	assert.Equal(t, "ghost", emps[1].EmployeeID)

	assert.Len(t, idx.ShiftsForEmployee("e1"), 3, "无效日期的班次不计入")
	assert.Empty(t, idx.ShiftsOn(time.Time{}))
	assert.Empty(t, idx.ShiftsOn(day(2030, time.January, 1)))
}
