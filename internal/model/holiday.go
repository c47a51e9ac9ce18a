package model

import "time"

// Holiday 节假日，对应表 holidays
// Type / Description 为可选字段
type Holiday struct {
	HolidayID      string    `gorm:"type:uuid;primaryKey"         json:"holiday_id"`
	OrganizationID string    `gorm:"type:varchar(64);not null"    json:"organization_id"`
	Date           time.Time `gorm:"type:date;not null"           json:"date"`
	Name           string    `gorm:"type:varchar(200);not null"   json:"name"`
	Type           *string   `gorm:"type:varchar(50)"             json:"type,omitempty"`
	Description    *string   `gorm:"type:text"                    json:"description,omitempty"`
	Version        int       `gorm:"not null;default:1"           json:"version"`
	BaseModel
}

// TableName 指定表名
func (Holiday) TableName() string { return "holidays" }
