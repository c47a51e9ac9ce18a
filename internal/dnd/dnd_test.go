package dnd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []Payload
	dates []time.Time
	err   error
}

func (r *recorder) receive(_ context.Context, p Payload, d time.Time) error {
	r.calls = append(r.calls, p)
	r.dates = append(r.dates, d)
	return r.err
}

var july4 = time.Date(2024, time.July, 4, 12, 0, 0, 0, time.UTC)

func TestNewSource_RejectsEmpty(t *testing.T) {
	_, err := NewSource("   ")
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestGesture_DropDeliversExactlyOnce(t *testing.T) {
	src, err := NewSource("e1")
	require.NoError(t, err)
	rec := &recorder{}
	target := NewTarget(july4, rec.receive)

	g := src.Begin()
	require.NoError(t, g.Drop(context.Background(), target))
	assert.ErrorIs(t, g.Drop(context.Background(), target), ErrGestureClosed)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "e1", rec.calls[0].EmployeeID)
	assert.Equal(t, july4, rec.dates[0])
	assert.True(t, g.Closed())
}

func TestGesture_CancelHasNoSideEffect(t *testing.T) {
	src, _ := NewSource("e1")
	rec := &recorder{}

	g := src.Begin()
	g.Cancel()
	assert.ErrorIs(t, g.Drop(context.Background(), NewTarget(july4, rec.receive)), ErrGestureClosed)
	assert.Empty(t, rec.calls)
}

func TestGesture_InvalidTargetKeepsGestureOpen(t *testing.T) {
	src, _ := NewSource("e1")
	rec := &recorder{}
	g := src.Begin()

	assert.ErrorIs(t, g.Drop(context.Background(), nil), ErrInvalidTarget)
	assert.ErrorIs(t, g.Drop(context.Background(), NewTarget(time.Time{}, rec.receive)), ErrInvalidTarget)
	assert.ErrorIs(t, g.Drop(context.Background(), NewTarget(july4, nil)), ErrInvalidTarget)
	assert.False(t, g.Closed())

	require.NoError(t, g.Drop(context.Background(), NewTarget(july4, rec.receive)))
	assert.Len(t, rec.calls, 1)
}

func TestGesture_ReceiverErrorPropagates(t *testing.T) {
	src, _ := NewSource("e1")
	boom := errors.New("store down")
	rec := &recorder{err: boom}

	g := src.Begin()
	assert.ErrorIs(t, g.Drop(context.Background(), NewTarget(july4, rec.receive)), boom)
	assert.True(t, g.Closed(), "投递已发生，手势结束")
}
