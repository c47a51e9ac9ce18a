package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shiftboard/config"
	"shiftboard/internal/api/handler"
	"shiftboard/internal/api/middleware"
	"shiftboard/pkg/jwt"
	"shiftboard/pkg/metrics"
)

// 变更类接口的限流：每用户每路由每分钟
const (
	mutationRateLimit  = 120
	mutationRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时不限流；m 为 nil 时不暴露指标
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, limiter middleware.RateLimiter, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	if err := middleware.RegisterValidators(); err != nil {
		logger.Fatal("注册参数校验规则失败", zap.Error(err))
	}

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	if cfg.Server.BodyLimit > 0 {
		r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	}
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	// ── 健康检查 / 指标 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if m != nil && cfg.Metrics.Enabled {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
	}

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth(jwtMgr))
	{
		scheduler := []gin.HandlerFunc{
			middleware.RoleAuth("admin", "scheduler"),
			middleware.RateLimit(limiter, mutationRateLimit, mutationRateWindow),
		}
		with := func(hf gin.HandlerFunc, chain ...gin.HandlerFunc) []gin.HandlerFunc {
			return append(append([]gin.HandlerFunc{}, chain...), hf)
		}

		// 员工目录（只读）
		v1.GET("/employees", h.Employee.ListEmployees)

		// 节假日
		holidays := v1.Group("/holidays")
		{
			holidays.GET("", h.Holiday.ListHolidays)
			holidays.POST("/import", middleware.RoleAuth("admin"), middleware.RateLimit(limiter, 10, time.Minute), h.Holiday.ImportHolidays)
			holidays.PUT("/:id", middleware.RoleAuth("admin"), h.Holiday.UpdateHoliday)
			holidays.DELETE("/:id", middleware.RoleAuth("admin"), h.Holiday.DeleteHoliday)
		}

		// 班次
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", h.Shift.ListShifts)
			shifts.POST("", with(h.Shift.AssignShift, scheduler...)...)
			shifts.PUT("/:id", with(h.Shift.EditShift, scheduler...)...)
			shifts.DELETE("/:id", with(h.Shift.RemoveShift, scheduler...)...)
			shifts.DELETE("", with(h.Shift.RemoveShiftsForEmployeeOnDate, scheduler...)...)
		}

		// 日历视图（视图状态按用户保存，任何角色可浏览）
		cal := v1.Group("/calendar")
		{
			cal.GET("", h.Calendar.GetCalendar)
			cal.PUT("/mode", h.Calendar.SetMode)
			cal.POST("/navigate", h.Calendar.Navigate)
			cal.POST("/drop", with(h.Calendar.Drop, scheduler...)...)
		}

		// 甘特视图
		gantt := v1.Group("/gantt")
		{
			gantt.GET("", h.Gantt.GetGantt)
			gantt.PUT("/mode", h.Gantt.SetMode)
			gantt.POST("/navigate", h.Gantt.Navigate)
			gantt.GET("/detail", h.Gantt.Detail)
		}

		// 导出
		export := v1.Group("/export")
		{
			export.GET("/calendar", h.Export.ExportCalendar)
			export.GET("/shifts.ics", h.Export.ExportShiftsICS)
		}
	}

	return r
}
