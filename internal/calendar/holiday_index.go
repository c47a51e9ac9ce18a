package calendar

import (
	"time"

	"shiftboard/internal/model"
)

// HolidayIndex 按日历日匹配节假日
// 同一天存在多条记录时取输入顺序中的第一条
type HolidayIndex struct {
	holidays []model.Holiday
}

// NewHolidayIndex 基于节假日集合构建索引（不复制底层数据）
func NewHolidayIndex(holidays []model.Holiday) *HolidayIndex {
	return &HolidayIndex{holidays: holidays}
}

// HolidayFor 返回 date 当天的节假日
func (x *HolidayIndex) HolidayFor(date time.Time) (model.Holiday, bool) {
	if x == nil || date.IsZero() {
		return model.Holiday{}, false
	}
	for _, h := range x.holidays {
		if SameDay(h.Date, date) {
			return h, true
		}
	}
	return model.Holiday{}, false
}

// IsHoliday date 是否为节假日
func (x *HolidayIndex) IsHoliday(date time.Time) bool {
	_, ok := x.HolidayFor(date)
	return ok
}

// overlay 返回节假日指针，供视图单元格使用
func (x *HolidayIndex) overlay(date time.Time) *model.Holiday {
	h, ok := x.HolidayFor(date)
	if !ok {
		return nil
	}
	return &h
}
