package dto

// ── 节假日 / 员工 DTO ──

// HolidayResponse 节假日信息
type HolidayResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Version     int     `json:"version"`
}

// ImportHolidaysRequest 从订阅 URL 导入节假日（文件上传走 multipart）
type ImportHolidaysRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// UpdateHolidayRequest 修改节假日，version 为读取时的版本号
type UpdateHolidayRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=200"`
	Type        *string `json:"type"        binding:"omitempty,max=50"`
	Description *string `json:"description"`
	Version     int     `json:"version"     binding:"required,min=1"`
}

// ImportHolidaysResponse 导入结果
type ImportHolidaysResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// EmployeeResponse 员工目录条目
type EmployeeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
