package calendar

import "time"

// ViewState 单个用户的视图状态（模式 + 参考日期）
// GridMode 记录最近一次使用的网格模式，agenda 模式下前后翻页沿用它的步长。
// AnchorDay 是按月翻页时希望停留的日号：1 月 31 日 → 2 月 29 日 → 3 月 31 日，
// 保证先 next 再 previous 一定回到原日期。
type ViewState struct {
	Mode      ViewMode  `json:"mode"`
	Reference time.Time `json:"reference"`
	GridMode  ViewMode  `json:"grid_mode,omitempty"`
	AnchorDay int       `json:"anchor_day,omitempty"`
}

// navigator 日历视图与甘特视图共用的导航逻辑
type navigator struct {
	state    ViewState
	now      func() time.Time
	loc      *time.Location
	fallback ViewMode
	allowed  func(ViewMode) bool
}

func newNavigator(state ViewState, now func() time.Time, loc *time.Location, fallback ViewMode, allowed func(ViewMode) bool) navigator {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	n := navigator{state: state, now: now, loc: loc, fallback: fallback, allowed: allowed}

	if !allowed(n.state.Mode) {
		n.state.Mode = fallback
	}
	if !n.state.GridMode.IsGrid() || !allowed(n.state.GridMode) {
		n.state.GridMode = fallback
	}
	if n.state.Mode.IsGrid() {
		n.state.GridMode = n.state.Mode
	}
	if n.state.Reference.IsZero() {
		n.state.Reference = Today(n.now(), loc)
	} else {
		n.state.Reference = Midday(n.state.Reference.In(loc))
	}
	if !anchorConsistent(n.state.Reference, n.state.AnchorDay) {
		n.state.AnchorDay = n.state.Reference.Day()
	}
	return n
}

// anchorConsistent 参考日期必须等于锚定日号在当月截断后的结果
func anchorConsistent(ref time.Time, anchor int) bool {
	if anchor < 1 || anchor > 31 {
		return false
	}
	want := anchor
	if last := daysIn(ref); want > last {
		want = last
	}
	return ref.Day() == want
}

func (n *navigator) setMode(mode ViewMode) error {
	if !n.allowed(mode) {
		return ErrUnsupportedMode
	}
	n.state.Mode = mode
	if mode.IsGrid() {
		n.state.GridMode = mode
	}
	return nil
}

func (n *navigator) step(dir int) {
	if n.state.GridMode == ModeMonth {
		if dir > 0 {
			dir = 1
		} else if dir < 0 {
			dir = -1
		}
		n.state.Reference = addMonthsClamped(n.state.Reference, dir, n.state.AnchorDay)
		return
	}
	n.state.Reference = Step(n.state.Reference, n.state.GridMode, dir)
	n.state.AnchorDay = n.state.Reference.Day()
}

func (n *navigator) today() {
	n.state.Reference = Today(n.now(), n.loc)
	n.state.AnchorDay = n.state.Reference.Day()
}
