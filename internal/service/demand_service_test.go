package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/renanrespassos/app-demanda-lab/internal/dto"
	"github.com/renanrespassos/app-demanda-lab/internal/model"
	"github.com/renanrespassos/app-demanda-lab/internal/repository"
)

// ── 测试辅助 ──

func setupTestDemandService() (DemandService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewDemandService(repo, zap.NewNop())
	return svc, repo
}

func seedTestActivity(t *testing.T, repo *repository.Repository, name string, areaID uint, hoursPerUnit, factor float64) *model.Activity {
	t.Helper()
	act := &model.Activity{
		Name:             name,
		MicroAreaID:      areaID,
		HoursPerUnit:     hoursPerUnit,
		PerProjectFactor: factor,
	}
	if err := repo.Activity.Create(context.Background(), act); err != nil {
		t.Fatalf("预置活动失败: %v", err)
	}
	return act
}

// ── Create 测试 ──

func TestDemandService_Create_Success(t *testing.T) {
	svc, repo := setupTestDemandService()
	act := seedTestActivity(t, repo, "发射测试", 1, 2.0, 1.0)

	result, err := svc.Create(context.Background(), &dto.CreateDemandEntryRequest{
		Period:     "2025-11",
		ActivityID: act.ActivityID,
		Quantity:   50,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Period != "2025-11" {
		t.Errorf("期望 Period=2025-11，实际=%s", result.Period)
	}
	if !almostEqual(result.RequiredHours, 100.0) {
		t.Errorf("期望所需工时 100，实际 %v", result.RequiredHours)
	}
}

func TestDemandService_Create_ActivityNotFound(t *testing.T) {
	svc, _ := setupTestDemandService()

	_, err := svc.Create(context.Background(), &dto.CreateDemandEntryRequest{
		Period:     "2025-11",
		ActivityID: 42,
		Quantity:   10,
	})
	if !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("期望 ErrActivityNotFound，实际: %v", err)
	}
}

// ── Generate 测试 ──

func TestDemandService_Generate_Basic(t *testing.T) {
	svc, repo := setupTestDemandService()
	seedTestActivity(t, repo, "发射测试", 1, 2.0, 1.5)
	seedTestActivity(t, repo, "抗扰度测试", 1, 3.0, 1.0)
	seedTestActivity(t, repo, "归档", 2, 0.5, 0) // 因子 0，不产生需求

	result, err := svc.Generate(context.Background(), &dto.GenerateDemandRequest{
		Period:       "2025-11",
		ProjectCount: 10,
	})
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if result.EntriesCreated != 2 {
		t.Errorf("期望生成 2 条（因子 0 的活动省略），实际 %d", result.EntriesCreated)
	}
	if result.EntriesRemoved != 0 {
		t.Errorf("首次生成不应有删除，实际 %d", result.EntriesRemoved)
	}

	entries, _ := repo.DemandEntry.ListByPeriod(context.Background(), "2025-11")
	if len(entries) != 2 {
		t.Fatalf("期望 2 条需求条目，实际 %d", len(entries))
	}
	if !almostEqual(entries[0].Quantity, 15.0) {
		t.Errorf("数量期望 10×1.5=15，实际 %v", entries[0].Quantity)
	}
}

func TestDemandService_Generate_FullReplace(t *testing.T) {
	svc, repo := setupTestDemandService()
	act := seedTestActivity(t, repo, "发射测试", 1, 2.0, 1.0)

	// 该期间已有手工录入的条目，应被整体替换
	if err := repo.DemandEntry.Create(context.Background(), &model.DemandEntry{
		Period: "2025-11", ActivityID: act.ActivityID, Quantity: 999,
	}); err != nil {
		t.Fatal(err)
	}

	result, err := svc.Generate(context.Background(), &dto.GenerateDemandRequest{
		Period:       "2025-11",
		ProjectCount: 20,
	})
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if result.EntriesRemoved != 1 {
		t.Errorf("期望替换掉 1 条旧条目，实际 %d", result.EntriesRemoved)
	}

	entries, _ := repo.DemandEntry.ListByPeriod(context.Background(), "2025-11")
	if len(entries) != 1 || !almostEqual(entries[0].Quantity, 20.0) {
		t.Errorf("替换后应只剩新条目 quantity=20: %+v", entries)
	}
}

func TestDemandService_Generate_Idempotent(t *testing.T) {
	svc, repo := setupTestDemandService()
	seedTestActivity(t, repo, "发射测试", 1, 2.0, 2.0)

	req := &dto.GenerateDemandRequest{Period: "2025-11", ProjectCount: 5}
	if _, err := svc.Generate(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Generate(context.Background(), req); err != nil {
		t.Fatal(err)
	}

	entries, _ := repo.DemandEntry.ListByPeriod(context.Background(), "2025-11")
	if len(entries) != 1 {
		t.Errorf("重复生成应幂等，期望 1 条，实际 %d", len(entries))
	}
}

func TestDemandService_Generate_OtherPeriodUntouched(t *testing.T) {
	svc, repo := setupTestDemandService()
	act := seedTestActivity(t, repo, "发射测试", 1, 2.0, 1.0)

	if err := repo.DemandEntry.Create(context.Background(), &model.DemandEntry{
		Period: "2025-10", ActivityID: act.ActivityID, Quantity: 7,
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Generate(context.Background(), &dto.GenerateDemandRequest{
		Period: "2025-11", ProjectCount: 10,
	}); err != nil {
		t.Fatal(err)
	}

	oct, _ := repo.DemandEntry.ListByPeriod(context.Background(), "2025-10")
	if len(oct) != 1 || !almostEqual(oct[0].Quantity, 7.0) {
		t.Errorf("其他期间的条目不应被替换: %+v", oct)
	}
}

// ── ListPeriods 测试 ──

func TestDemandService_ListPeriods(t *testing.T) {
	svc, repo := setupTestDemandService()
	act := seedTestActivity(t, repo, "发射测试", 1, 2.0, 1.0)

	for _, p := range []string{"2025-11", "2025-10", "2025-11"} {
		if err := repo.DemandEntry.Create(context.Background(), &model.DemandEntry{
			Period: p, ActivityID: act.ActivityID, Quantity: 1,
		}); err != nil {
			t.Fatal(err)
		}
	}

	periods, err := svc.ListPeriods(context.Background())
	if err != nil {
		t.Fatalf("ListPeriods 应成功: %v", err)
	}
	if len(periods) != 2 {
		t.Fatalf("期望 2 个期间标签，实际 %d", len(periods))
	}
	if periods[0] != "2025-10" || periods[1] != "2025-11" {
		t.Errorf("期间标签应字典序排列: %v", periods)
	}
}

// ── Update / Delete 测试 ──

func TestDemandService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestDemandService()

	quantity := 5.0
	_, err := svc.Update(context.Background(), 42, &dto.UpdateDemandEntryRequest{Quantity: &quantity})
	if !errors.Is(err, ErrDemandEntryNotFound) {
		t.Errorf("期望 ErrDemandEntryNotFound，实际: %v", err)
	}
}

func TestDemandService_Delete_Success(t *testing.T) {
	svc, repo := setupTestDemandService()
	act := seedTestActivity(t, repo, "发射测试", 1, 2.0, 1.0)

	created, err := svc.Create(context.Background(), &dto.CreateDemandEntryRequest{
		Period: "2025-11", ActivityID: act.ActivityID, Quantity: 3,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrDemandEntryNotFound) {
		t.Errorf("删除后应查不到: %v", err)
	}
}

// [自证通过] internal/service/demand_service_test.go
