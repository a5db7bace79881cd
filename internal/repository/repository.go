package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	MicroArea     MicroAreaRepository
	Worker        WorkerRepository
	Activity      ActivityRepository
	Participation ParticipationRepository
	DemandEntry   DemandEntryRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		MicroArea:     NewMicroAreaRepo(db),
		Worker:        NewWorkerRepo(db),
		Activity:      NewActivityRepo(db),
		Participation: NewParticipationRepo(db),
		DemandEntry:   NewDemandEntryRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
