package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics 排班服务指标集合
// 每个实例持有独立的 Registry，测试中可重复创建
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	ShiftsCreated prometheus.Counter
	ShiftsRemoved prometheus.Counter
	ShiftsEdited  prometheus.Counter
	Drops         *prometheus.CounterVec
}

// New 创建并注册全部指标
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shiftboard",
			Name:      "http_requests_total",
			Help:      "HTTP 请求总数",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shiftboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP 请求耗时",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ShiftsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shiftboard",
			Name:      "shifts_created_total",
			Help:      "新建班次数",
		}),
		ShiftsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shiftboard",
			Name:      "shifts_removed_total",
			Help:      "删除班次数（不含幂等的空删除）",
		}),
		ShiftsEdited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shiftboard",
			Name:      "shifts_edited_total",
			Help:      "编辑班次数",
		}),
		Drops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shiftboard",
			Name:      "drop_gestures_total",
			Help:      "拖放手势数，按结果区分",
		}, []string{"result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.ShiftsCreated,
		m.ShiftsRemoved,
		m.ShiftsEdited,
		m.Drops,
	)
	return m
}
