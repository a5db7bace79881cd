package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/renanrespassos/app-demanda-lab/internal/model"
	"github.com/renanrespassos/app-demanda-lab/internal/repository"
)

// ── Mock MicroAreaRepository ──

type mockMicroAreaRepo struct {
	areas  map[uint]*model.MicroArea
	nextID uint
}

func newMockMicroAreaRepo() *mockMicroAreaRepo {
	return &mockMicroAreaRepo{areas: make(map[uint]*model.MicroArea), nextID: 1}
}

func (m *mockMicroAreaRepo) Create(_ context.Context, area *model.MicroArea) error {
	if area.MicroAreaID == 0 {
		area.MicroAreaID = m.nextID
		m.nextID++
	}
	m.areas[area.MicroAreaID] = area
	return nil
}

func (m *mockMicroAreaRepo) GetByID(_ context.Context, id uint) (*model.MicroArea, error) {
	if a, ok := m.areas[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMicroAreaRepo) GetByName(_ context.Context, name string) (*model.MicroArea, error) {
	for _, a := range m.areas {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMicroAreaRepo) List(_ context.Context) ([]model.MicroArea, error) {
	var result []model.MicroArea
	for _, a := range m.areas {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MicroAreaID < result[j].MicroAreaID })
	return result, nil
}

func (m *mockMicroAreaRepo) Update(_ context.Context, area *model.MicroArea) error {
	m.areas[area.MicroAreaID] = area
	return nil
}

func (m *mockMicroAreaRepo) Delete(_ context.Context, id uint) error {
	delete(m.areas, id)
	return nil
}

func (m *mockMicroAreaRepo) CountWorkers(_ context.Context, _ uint) (int64, error) {
	return 0, nil
}

// ── Mock WorkerRepository ──

type mockWorkerRepo struct {
	workers map[uint]*model.Worker
	nextID  uint
}

func newMockWorkerRepo() *mockWorkerRepo {
	return &mockWorkerRepo{workers: make(map[uint]*model.Worker), nextID: 1}
}

func (m *mockWorkerRepo) Create(_ context.Context, worker *model.Worker) error {
	if worker.WorkerID == 0 {
		worker.WorkerID = m.nextID
		m.nextID++
	}
	m.workers[worker.WorkerID] = worker
	return nil
}

func (m *mockWorkerRepo) GetByID(_ context.Context, id uint) (*model.Worker, error) {
	if w, ok := m.workers[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkerRepo) GetByName(_ context.Context, name string) (*model.Worker, error) {
	for _, w := range m.workers {
		if w.Name == name {
			return w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkerRepo) List(_ context.Context, filters *repository.WorkerListFilters) ([]model.Worker, error) {
	var result []model.Worker
	for _, w := range m.workers {
		if filters != nil && !filters.IncludeInactive && !w.Active {
			continue
		}
		if filters != nil && filters.MicroAreaID != 0 {
			if w.MicroAreaID == nil || *w.MicroAreaID != filters.MicroAreaID {
				continue
			}
		}
		result = append(result, *w)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].WorkerID < result[j].WorkerID })
	return result, nil
}

func (m *mockWorkerRepo) ListActive(ctx context.Context) ([]model.Worker, error) {
	return m.List(ctx, &repository.WorkerListFilters{})
}

func (m *mockWorkerRepo) Update(_ context.Context, worker *model.Worker) error {
	m.workers[worker.WorkerID] = worker
	return nil
}

func (m *mockWorkerRepo) Delete(_ context.Context, id uint) error {
	delete(m.workers, id)
	return nil
}

// ── Mock ActivityRepository ──

type mockActivityRepo struct {
	activities map[uint]*model.Activity
	nextID     uint
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{activities: make(map[uint]*model.Activity), nextID: 1}
}

func (m *mockActivityRepo) Create(_ context.Context, activity *model.Activity) error {
	if activity.ActivityID == 0 {
		activity.ActivityID = m.nextID
		m.nextID++
	}
	m.activities[activity.ActivityID] = activity
	return nil
}

func (m *mockActivityRepo) GetByID(_ context.Context, id uint) (*model.Activity, error) {
	if a, ok := m.activities[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockActivityRepo) List(_ context.Context) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ActivityID < result[j].ActivityID })
	return result, nil
}

func (m *mockActivityRepo) ListByMicroArea(_ context.Context, microAreaID uint) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if a.MicroAreaID == microAreaID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ActivityID < result[j].ActivityID })
	return result, nil
}

func (m *mockActivityRepo) Update(_ context.Context, activity *model.Activity) error {
	m.activities[activity.ActivityID] = activity
	return nil
}

func (m *mockActivityRepo) Delete(_ context.Context, id uint) error {
	delete(m.activities, id)
	return nil
}

// ── Mock ParticipationRepository ──

type mockParticipationRepo struct {
	links  map[uint]*model.Participation
	nextID uint
}

func newMockParticipationRepo() *mockParticipationRepo {
	return &mockParticipationRepo{links: make(map[uint]*model.Participation), nextID: 1}
}

func (m *mockParticipationRepo) Create(_ context.Context, link *model.Participation) error {
	if link.ParticipationID == 0 {
		link.ParticipationID = m.nextID
		m.nextID++
	}
	m.links[link.ParticipationID] = link
	return nil
}

func (m *mockParticipationRepo) GetByID(_ context.Context, id uint) (*model.Participation, error) {
	if l, ok := m.links[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockParticipationRepo) List(_ context.Context, filters *repository.ParticipationListFilters) ([]model.Participation, error) {
	var result []model.Participation
	for _, l := range m.links {
		if filters != nil && filters.WorkerID != 0 && l.WorkerID != filters.WorkerID {
			continue
		}
		if filters != nil && filters.ActivityID != 0 && l.ActivityID != filters.ActivityID {
			continue
		}
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ParticipationID < result[j].ParticipationID })
	return result, nil
}

func (m *mockParticipationRepo) ListAll(ctx context.Context) ([]model.Participation, error) {
	return m.List(ctx, nil)
}

func (m *mockParticipationRepo) Update(_ context.Context, link *model.Participation) error {
	m.links[link.ParticipationID] = link
	return nil
}

func (m *mockParticipationRepo) Delete(_ context.Context, id uint) error {
	delete(m.links, id)
	return nil
}

func (m *mockParticipationRepo) DeleteByWorker(_ context.Context, workerID uint) error {
	for id, l := range m.links {
		if l.WorkerID == workerID {
			delete(m.links, id)
		}
	}
	return nil
}

func (m *mockParticipationRepo) DeleteByActivity(_ context.Context, activityID uint) error {
	for id, l := range m.links {
		if l.ActivityID == activityID {
			delete(m.links, id)
		}
	}
	return nil
}

// ── Mock DemandEntryRepository ──

type mockDemandEntryRepo struct {
	entries map[uint]*model.DemandEntry
	nextID  uint
}

func newMockDemandEntryRepo() *mockDemandEntryRepo {
	return &mockDemandEntryRepo{entries: make(map[uint]*model.DemandEntry), nextID: 1}
}

func (m *mockDemandEntryRepo) Create(_ context.Context, entry *model.DemandEntry) error {
	if entry.DemandEntryID == 0 {
		entry.DemandEntryID = m.nextID
		m.nextID++
	}
	m.entries[entry.DemandEntryID] = entry
	return nil
}

func (m *mockDemandEntryRepo) GetByID(_ context.Context, id uint) (*model.DemandEntry, error) {
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDemandEntryRepo) ListByPeriod(_ context.Context, period string) ([]model.DemandEntry, error) {
	var result []model.DemandEntry
	for _, e := range m.entries {
		if e.Period == period {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DemandEntryID < result[j].DemandEntryID })
	return result, nil
}

func (m *mockDemandEntryRepo) ListAll(_ context.Context) ([]model.DemandEntry, error) {
	var result []model.DemandEntry
	for _, e := range m.entries {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DemandEntryID < result[j].DemandEntryID })
	return result, nil
}

func (m *mockDemandEntryRepo) ListPeriods(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var periods []string
	for _, e := range m.entries {
		if !seen[e.Period] {
			seen[e.Period] = true
			periods = append(periods, e.Period)
		}
	}
	sort.Strings(periods)
	return periods, nil
}

func (m *mockDemandEntryRepo) Update(_ context.Context, entry *model.DemandEntry) error {
	m.entries[entry.DemandEntryID] = entry
	return nil
}

func (m *mockDemandEntryRepo) Delete(_ context.Context, id uint) error {
	delete(m.entries, id)
	return nil
}

func (m *mockDemandEntryRepo) ReplacePeriod(ctx context.Context, period string, entries []model.DemandEntry) (int64, error) {
	var removed int64
	for id, e := range m.entries {
		if e.Period == period {
			delete(m.entries, id)
			removed++
		}
	}
	for i := range entries {
		if err := m.Create(ctx, &entries[i]); err != nil {
			return removed, err
		}
	}
	return removed, nil
}

// ── 测试用 Repository 聚合 ──

func newMockRepository() *repository.Repository {
	return &repository.Repository{
		MicroArea:     newMockMicroAreaRepo(),
		Worker:        newMockWorkerRepo(),
		Activity:      newMockActivityRepo(),
		Participation: newMockParticipationRepo(),
		DemandEntry:   newMockDemandEntryRepo(),
	}
}

// [自证通过] internal/service/mock_repos_test.go
