// Package calendar 排班日历的纯计算部分：日期网格、节假日索引、班次索引以及日历/甘特视图。
//
// 包内所有函数只做内存计算，不访问存储；每次渲染都基于调用方传入的最新集合重新推导。
// 日期统一归一到当地正午（12:00），避免夏令时切换导致的跨日漂移。
package calendar

import (
	"errors"
	"strings"
	"time"
)

// ViewMode 视图模式
type ViewMode string

const (
	ModeDay    ViewMode = "day"
	ModeWeek   ViewMode = "week"
	ModeMonth  ViewMode = "month"
	ModeAgenda ViewMode = "agenda"
)

// MonthGridCells 月视图固定 6 行 × 7 列
const MonthGridCells = 42

const dateLayout = "2006-01-02"

// ErrUnsupportedMode 视图不支持该模式
var ErrUnsupportedMode = errors.New("calendar: unsupported view mode")

// ParseViewMode 解析视图模式（大小写不敏感）
func ParseViewMode(s string) (ViewMode, bool) {
	switch m := ViewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeDay, ModeWeek, ModeMonth, ModeAgenda:
		return m, true
	}
	return "", false
}

// IsGrid 是否为网格模式（agenda 不生成网格）
func (m ViewMode) IsGrid() bool {
	return m == ModeDay || m == ModeWeek || m == ModeMonth
}

// Midday 归一到 t 所在时区当天 12:00
func Midday(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}

// SameDay 按年月日比较，忽略时分秒；零值日期永不相等
func SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayKey 返回 2006-01-02 形式的日历日键，零值返回空串
func DayKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// ParseDate 解析 2006-01-02 或 RFC3339 日期，结果归一到 loc 的当天正午
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return Midday(t), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Midday(t.In(loc)), true
	}
	return time.Time{}, false
}

// GenerateCells 生成视图需要渲染的日期序列
//   - day:   仅 ref 当天
//   - week:  ref 所在周，周日起至周六，共 7 天
//   - month: 固定 42 天，前后用相邻月份日期补齐
//
// ref 为零值或模式不是网格模式时返回空序列。
func GenerateCells(ref time.Time, mode ViewMode) []time.Time {
	if ref.IsZero() {
		return nil
	}
	ref = Midday(ref)

	switch mode {
	case ModeDay:
		return []time.Time{ref}
	case ModeWeek:
		return consecutiveDays(weekStart(ref), 7)
	case ModeMonth:
		first := time.Date(ref.Year(), ref.Month(), 1, 12, 0, 0, 0, ref.Location())
		return consecutiveDays(weekStart(first), MonthGridCells)
	default:
		return nil
	}
}

// Step 按模式前进(dir>0)或后退(dir<0)一个周期：日 ±1 天，周 ±7 天，月 ±1 个自然月
// 月份跨越时日期按目标月天数截断（1 月 31 日 → 2 月最后一天）
func Step(ref time.Time, mode ViewMode, dir int) time.Time {
	if ref.IsZero() || dir == 0 {
		return ref
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}
	ref = Midday(ref)

	switch mode {
	case ModeDay:
		return ref.AddDate(0, 0, dir)
	case ModeWeek:
		return ref.AddDate(0, 0, 7*dir)
	case ModeMonth:
		return addMonthsClamped(ref, dir, ref.Day())
	default:
		return ref
	}
}

// Today 当前时刻归一到正午
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}
	return Midday(now)
}

func weekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

func consecutiveDays(start time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// addMonthsClamped 以 day 为目标日跨月，超出目标月天数时取月末
func addMonthsClamped(t time.Time, n, day int) time.Time {
	y, m, _ := t.Date()
	d := day
	// time.Date 会自动处理 13 月 → 次年 1 月
	first := time.Date(y, m+time.Month(n), 1, 12, 0, 0, 0, t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 12, 0, 0, 0, t.Location())
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 12, 0, 0, 0, t.Location()).Day()
}
