package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_IndependentRegistries(t *testing.T) {
	m1 := New()
	m2 := New()

	m1.ShiftsCreated.Inc()
	m1.ShiftsCreated.Inc()

	if got := testutil.ToFloat64(m1.ShiftsCreated); got != 2 {
		t.Errorf("期望 m1 shifts_created=2，实际=%v", got)
	}
	if got := testutil.ToFloat64(m2.ShiftsCreated); got != 0 {
		t.Errorf("期望 m2 shifts_created=0，实际=%v", got)
	}
}

func TestDrops_ByResult(t *testing.T) {
	m := New()
	m.Drops.WithLabelValues("assigned").Inc()
	m.Drops.WithLabelValues("rejected").Inc()
	m.Drops.WithLabelValues("assigned").Inc()

	if got := testutil.ToFloat64(m.Drops.WithLabelValues("assigned")); got != 2 {
		t.Errorf("期望 assigned=2，实际=%v", got)
	}
}
