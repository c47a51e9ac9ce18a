// Package dnd 拖拽传输：把"被拖拽的员工 ID"从拖拽源投递到放置目标。
//
// 本包只负责载荷的一次性投递，不包含任何排班策略；放置后做什么由目标的接收函数决定。
package dnd

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrEmptyPayload  = errors.New("dnd: 拖拽载荷为空")
	ErrInvalidTarget = errors.New("dnd: 无效的放置目标")
	ErrGestureClosed = errors.New("dnd: 拖拽已结束")
)

// Payload 拖拽载荷
type Payload struct {
	EmployeeID string `json:"employee_id"`
}

// Receiver 放置目标收到载荷后的处理函数
type Receiver func(ctx context.Context, payload Payload, date time.Time) error

// Source 可拖拽的员工条目
type Source struct {
	payload Payload
}

// NewSource 以员工 ID 创建拖拽源
func NewSource(employeeID string) (*Source, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrEmptyPayload
	}
	return &Source{payload: Payload{EmployeeID: employeeID}}, nil
}

// Begin 开始一次拖拽
func (s *Source) Begin() *Gesture {
	return &Gesture{payload: s.payload}
}

// Target 放置目标（日历单元格）
type Target struct {
	Date    time.Time
	receive Receiver
}

// NewTarget 创建放置目标
func NewTarget(date time.Time, receive Receiver) *Target {
	return &Target{Date: date, receive: receive}
}

func (t *Target) valid() bool {
	return t != nil && t.receive != nil && !t.Date.IsZero()
}

// Gesture 一次拖拽手势，最多投递一次
type Gesture struct {
	payload Payload

	mu     sync.Mutex
	closed bool
}

// Payload 当前拖拽的载荷
func (g *Gesture) Payload() Payload { return g.payload }

// Drop 放置到目标并投递载荷
// 目标无效时手势保持进行中，可继续放到其他目标；投递后（无论接收方是否报错）手势结束
func (g *Gesture) Drop(ctx context.Context, target *Target) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrGestureClosed
	}
	if !target.valid() {
		return ErrInvalidTarget
	}
	g.closed = true
	return target.receive(ctx, g.payload, target.Date)
}

// Cancel 取消拖拽，不产生任何副作用
func (g *Gesture) Cancel() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}

// Closed 手势是否已结束
func (g *Gesture) Closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}
