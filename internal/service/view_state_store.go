package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"shiftboard/internal/calendar"
)

// ViewStateStore 按用户保存视图状态（日历与甘特各自独立的 key）
type ViewStateStore interface {
	Load(ctx context.Context, key string) (calendar.ViewState, bool, error)
	Save(ctx context.Context, key string, state calendar.ViewState) error
}

// viewStateBackend Redis 客户端中与视图状态相关的子集
type viewStateBackend interface {
	SaveViewState(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	LoadViewState(ctx context.Context, key string) ([]byte, bool, error)
}

// NewViewStateStore backend 为 nil 时退化为进程内存储
func NewViewStateStore(backend viewStateBackend, ttl time.Duration) ViewStateStore {
	if backend == nil {
		return NewMemoryViewStateStore()
	}
	return &redisViewStateStore{backend: backend, ttl: ttl}
}

// ── Redis 实现 ──

type redisViewStateStore struct {
	backend viewStateBackend
	ttl     time.Duration
}

func (s *redisViewStateStore) Load(ctx context.Context, key string) (calendar.ViewState, bool, error) {
	raw, found, err := s.backend.LoadViewState(ctx, key)
	if err != nil || !found {
		return calendar.ViewState{}, false, err
	}
	var st calendar.ViewState
	if err := json.Unmarshal(raw, &st); err != nil {
		// 损坏的状态视为不存在，由调用方重建默认视图
		return calendar.ViewState{}, false, nil
	}
	return st, true, nil
}

func (s *redisViewStateStore) Save(ctx context.Context, key string, state calendar.ViewState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.backend.SaveViewState(ctx, key, raw, s.ttl)
}

// ── 内存实现 ──

type memoryViewStateStore struct {
	mu     sync.RWMutex
	states map[string]calendar.ViewState
}

// NewMemoryViewStateStore 进程内视图状态存储（单实例部署或 Redis 不可用时使用）
func NewMemoryViewStateStore() ViewStateStore {
	return &memoryViewStateStore{states: make(map[string]calendar.ViewState)}
}

func (s *memoryViewStateStore) Load(_ context.Context, key string) (calendar.ViewState, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[key]
	return st, ok, nil
}

func (s *memoryViewStateStore) Save(_ context.Context, key string, state calendar.ViewState) error {
	s.mu.Lock()
	s.states[key] = state
	s.mu.Unlock()
	return nil
}

func viewStateKey(view string, v Viewer) string {
	return view + ":" + v.OrganizationID + ":" + v.UserID
}
