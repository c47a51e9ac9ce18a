package service

import (
	"time"

	"shiftboard/config"
	"shiftboard/internal/model"
)

var testViewer = Viewer{OrganizationID: "org-1", UserID: "scheduler-1"}

func testConfig() *config.Config {
	return &config.Config{
		Scheduling: config.SchedulingConfig{
			Timezone:         "UTC",
			DefaultStartTime: "09:00",
			DefaultEndTime:   "17:00",
			ViewStateTTL:     time.Hour,
		},
		Holiday: config.HolidayConfig{
			ICSFetchTimeout: 5 * time.Second,
			ICSMaxBytes:     1 << 20,
		},
	}
}

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ann() model.Employee {
	return model.Employee{EmployeeID: "e1", OrganizationID: "org-1", Name: "Ann"}
}

func bob() model.Employee {
	return model.Employee{EmployeeID: "e2", OrganizationID: "org-1", Name: "Bob"}
}

func independenceDay() model.Holiday {
	return model.Holiday{HolidayID: "h1", OrganizationID: "org-1", Date: utcDay(2024, time.July, 4), Name: "Independence Day", Version: 1}
}
