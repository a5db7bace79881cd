package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/renanrespassos/app-demanda-lab/internal/dto"
	"github.com/renanrespassos/app-demanda-lab/internal/service"
	"github.com/renanrespassos/app-demanda-lab/pkg/response"
)

// DemandHandler 需求条目模块 HTTP 处理器
type DemandHandler struct {
	demandSvc service.DemandService
}

// NewDemandHandler 创建 DemandHandler
func NewDemandHandler(demandSvc service.DemandService) *DemandHandler {
	return &DemandHandler{demandSvc: demandSvc}
}

// ListDemandEntries 获取需求条目列表
// GET /api/v1/demand-entries?period=
func (h *DemandHandler) ListDemandEntries(c *gin.Context) {
	var req dto.DemandEntryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entries, err := h.demandSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": entries})
}

// GetDemandEntry 获取需求条目详情
// GET /api/v1/demand-entries/:id
func (h *DemandHandler) GetDemandEntry(c *gin.Context) {
	id, ok := MustParseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.demandSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleDemandError(c, err)
		return
	}
	response.OK(c, entry)
}

// CreateDemandEntry 创建需求条目
// POST /api/v1/demand-entries
func (h *DemandHandler) CreateDemandEntry(c *gin.Context) {
	var req dto.CreateDemandEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entry, err := h.demandSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDemandError(c, err)
		return
	}
	response.Created(c, entry)
}

// UpdateDemandEntry 更新需求条目
// PUT /api/v1/demand-entries/:id
func (h *DemandHandler) UpdateDemandEntry(c *gin.Context) {
	id, ok := MustParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDemandEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entry, err := h.demandSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleDemandError(c, err)
		return
	}
	response.OK(c, entry)
}

// DeleteDemandEntry 删除需求条目
// DELETE /api/v1/demand-entries/:id
func (h *DemandHandler) DeleteDemandEntry(c *gin.Context) {
	id, ok := MustParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.demandSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleDemandError(c, err)
		return
	}
	response.NoContent(c)
}

// GenerateDemand 按项目数批量生成某期间的需求条目（全量替换）
// POST /api/v1/demand-entries/generate
func (h *DemandHandler) GenerateDemand(c *gin.Context) {
	var req dto.GenerateDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.demandSvc.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handleDemandError(c, err)
		return
	}
	response.OK(c, result)
}

// ListPeriods 列出存在需求条目的全部期间标签
// GET /api/v1/demand-entries/periods
func (h *DemandHandler) ListPeriods(c *gin.Context) {
	periods, err := h.demandSvc.ListPeriods(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": periods})
}

// ── 错误映射 ──

func (h *DemandHandler) handleDemandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDemandEntryNotFound):
		response.NotFound(c, 40405, "需求条目不存在")
	case errors.Is(err, service.ErrActivityNotFound):
		response.BadRequest(c, 40403, "活动不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/demand_handler.go
