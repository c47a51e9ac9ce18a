package model

import "time"

// Shift 班次，对应表 shifts
// Date 仅标识所属日历日，分组比较只看年月日
// EmployeeID 不做外键校验，目录中不存在的员工在视图中显示为 Unknown
type Shift struct {
	ShiftID        string    `gorm:"type:uuid;primaryKey"            json:"shift_id"`
	OrganizationID string    `gorm:"type:varchar(64);not null"       json:"organization_id"`
	EmployeeID     string    `gorm:"type:varchar(64);not null"       json:"employee_id"`
	Date           time.Time `gorm:"type:date;not null"              json:"date"`
	StartTime      string    `gorm:"type:varchar(16);not null"       json:"start_time"`
	EndTime        string    `gorm:"type:varchar(16);not null"       json:"end_time"`
	Seq            int64     `gorm:"column:seq;->"                   json:"-"` // 数据库自增，仅用于插入顺序
	BaseModel
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }
