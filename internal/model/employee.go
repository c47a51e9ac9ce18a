package model

// Employee 员工，对应表 employees（由外部员工目录同步，排班会话内只读）
type Employee struct {
	EmployeeID     string `gorm:"type:varchar(64);primaryKey"  json:"employee_id"`
	OrganizationID string `gorm:"type:varchar(64);not null"    json:"organization_id"`
	Name           string `gorm:"type:varchar(100);not null"   json:"name"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }
