package service

import (
	"errors"
	"math"
	"sort"

	"github.com/renanrespassos/app-demanda-lab/internal/dto"
	"github.com/renanrespassos/app-demanda-lab/internal/model"
)

// ── 容量—需求核算引擎 ───────────────────────────────────────
//
// 职责：把人员名册、活动配置与期间需求折算成工时，按权重分摊
// 到人员，并按微领域汇总出容量收支与缺口信号。
//
// 设计决策：
//   - 全部为纯函数：不读库、不写状态、不修改入参切片
//   - 面向尽力而为的规划数据：空集合、未解析的引用、零权重
//     都退化为零/空结果，唯一的错误是结构性非法配置
//     （workingDays ≤ 0 或折算约定日工时 ≤ 0）
//   - 连接一律按整数 ID 等值匹配；微领域名称在装配阶段补齐
//   - 输出按 ID 升序排序，保证多次调用结果可比
// ─────────────────────────────────────────────────────────────

// 全职当量折算基准（小时/日）
const fullTimeHoursPerDay = 8.0

// ── 引擎结构性错误 ──

var (
	ErrInvalidWorkingDays    = errors.New("每期工作日数必须为正整数")
	ErrInvalidHourConvention = errors.New("折算约定的日工时必须为正数")
)

// round2 展示用两位小数舍入。只用于展示字段，绝不参与后续计算。
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeCapacity 计算每名人员的期容量
//
// 期容量 = 日工时 × 每期工作日数。日工时缺失（零值）退化为 0，
// 不报错；workingDays ≤ 0 属非法配置。
func ComputeCapacity(workers []model.Worker, workingDays int) ([]dto.WorkerCapacity, error) {
	if workingDays <= 0 {
		return nil, ErrInvalidWorkingDays
	}

	result := make([]dto.WorkerCapacity, 0, len(workers))
	for _, w := range workers {
		daily := w.DailyHours
		if daily < 0 {
			daily = 0
		}
		var areaID uint
		if w.MicroAreaID != nil {
			areaID = *w.MicroAreaID
		}
		result = append(result, dto.WorkerCapacity{
			WorkerID:       w.WorkerID,
			Name:           w.Name,
			Role:           w.Role,
			MicroAreaID:    areaID,
			DailyHours:     daily,
			PeriodCapacity: daily * float64(workingDays),
		})
	}
	return result, nil
}

// ExpandDemand 把某期间的需求条目展开为活动所需工时
//
// 只保留 period 相等的条目；引用不存在活动的条目静默丢弃。
// 所需工时 = quantity × hours_per_unit。期间无条目时返回空集，
// 这不是错误。
func ExpandDemand(activities []model.Activity, entries []model.DemandEntry, period string) []dto.ActivityDemand {
	activityIndex := make(map[uint]*model.Activity, len(activities))
	for i := range activities {
		activityIndex[activities[i].ActivityID] = &activities[i]
	}

	result := make([]dto.ActivityDemand, 0, len(entries))
	for _, e := range entries {
		if e.Period != period {
			continue
		}
		act, ok := activityIndex[e.ActivityID]
		if !ok {
			continue
		}
		result = append(result, dto.ActivityDemand{
			ActivityID:    act.ActivityID,
			ActivityName:  act.Name,
			MicroAreaID:   act.MicroAreaID,
			Quantity:      e.Quantity,
			RequiredHours: e.Quantity * act.HoursPerUnit,
		})
	}
	return result
}

// Allocate 把每条活动需求的工时按参与权重分摊到人员
//
// 规则（逐条需求行独立执行）：
//  1. 该活动无任何参与关联 → 工时不分给任何人（未指派积压，
//     仍计入微领域需求，见 AggregateByArea）
//  2. 权重全为 0 → 回退为均分（每条关联权重视为 1）
//  3. 份额 = H × (权重 ÷ 权重和)，同一活动各份额之和恒等于 H
//  4. 人员总分摊 = 其在所有需求行上份额的累加；同一
//     (worker, activity) 的多条关联各自计入
func Allocate(demand []dto.ActivityDemand, links []model.Participation) []dto.WorkerAllocation {
	linksByActivity := make(map[uint][]model.Participation, len(links))
	for _, l := range links {
		linksByActivity[l.ActivityID] = append(linksByActivity[l.ActivityID], l)
	}

	totals := make(map[uint]float64)
	for _, d := range demand {
		activityLinks := linksByActivity[d.ActivityID]
		if len(activityLinks) == 0 {
			continue // 未指派积压：不分摊给任何人
		}

		var weightSum float64
		for _, l := range activityLinks {
			if l.Weight > 0 {
				weightSum += l.Weight
			}
		}

		for _, l := range activityLinks {
			var share float64
			if weightSum > 0 {
				if l.Weight > 0 {
					share = d.RequiredHours * l.Weight / weightSum
				}
			} else {
				// 均分回退：只要有人被关联，分摊就有良定义
				share = d.RequiredHours / float64(len(activityLinks))
			}
			totals[l.WorkerID] += share
		}
	}

	result := make([]dto.WorkerAllocation, 0, len(totals))
	for workerID, hours := range totals {
		result = append(result, dto.WorkerAllocation{
			WorkerID:       workerID,
			AllocatedHours: hours,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].WorkerID < result[j].WorkerID })
	return result
}

// AggregateByArea 按微领域汇总需求与容量并求收支
//
// 需求侧按活动的微领域分组求和；容量侧按人员主微领域分组求和
// （次要微领域仅作参考，不贡献容量）。以需求为驱动做左连接：
// 有需求无容量的微领域容量记 0；有容量无需求的微领域不出现在
// 结果中。balance = capacity − demand。
func AggregateByArea(demand []dto.ActivityDemand, capacity []dto.WorkerCapacity) []dto.AreaBalance {
	demandByArea := make(map[uint]float64)
	for _, d := range demand {
		demandByArea[d.MicroAreaID] += d.RequiredHours
	}

	capacityByArea := make(map[uint]float64)
	for _, c := range capacity {
		capacityByArea[c.MicroAreaID] += c.PeriodCapacity
	}

	result := make([]dto.AreaBalance, 0, len(demandByArea))
	for areaID, required := range demandByArea {
		available := capacityByArea[areaID] // 未匹配 → 0，绝不缺键报错
		result = append(result, dto.AreaBalance{
			MicroAreaID:   areaID,
			RequiredHours: required,
			Capacity:      available,
			Balance:       available - required,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MicroAreaID < result[j].MicroAreaID })
	return result
}

// Gaps 把负收支折算为缺口工时与各约定下的缺口人头数
//
// 仅收支为负的微领域产生缺口行；缺口人头 = 缺口工时 ÷
// (约定日工时 × 每期工作日数)，保留两位小数（仅展示，不回流计算）。
func Gaps(balances []dto.AreaBalance, workingDays int, conventions []dto.HourConvention) ([]dto.AreaGap, error) {
	if workingDays <= 0 {
		return nil, ErrInvalidWorkingDays
	}
	for _, conv := range conventions {
		if conv.HoursPerDay <= 0 {
			return nil, ErrInvalidHourConvention
		}
	}

	result := make([]dto.AreaGap, 0)
	for _, b := range balances {
		if b.Balance >= 0 {
			continue // 无缺口
		}
		missing := -b.Balance

		equivalents := make([]dto.GapEquivalent, 0, len(conventions))
		for _, conv := range conventions {
			equivalents = append(equivalents, dto.GapEquivalent{
				Convention:  conv.Name,
				HoursPerDay: conv.HoursPerDay,
				Headcount:   round2(missing / (conv.HoursPerDay * float64(workingDays))),
			})
		}

		result = append(result, dto.AreaGap{
			MicroAreaID:   b.MicroAreaID,
			MicroAreaName: b.MicroAreaName,
			MissingHours:  missing,
			Equivalents:   equivalents,
		})
	}
	return result, nil
}

// ComputeDigest 计算全局摘要：一个系统级的净缺口数字
//
// 需求侧：总所需工时 ÷ 工作日数 → 日均所需工时 ÷ 8 → 所需全职
// 当量。容量侧：在册（active）人员日工时之和 ÷ 8 → 可用全职
// 当量。差值为正表示净短缺，为负表示净富余。
func ComputeDigest(demand []dto.ActivityDemand, workers []model.Worker, workingDays int) (dto.GlobalDigest, error) {
	if workingDays <= 0 {
		return dto.GlobalDigest{}, ErrInvalidWorkingDays
	}

	var totalRequired float64
	for _, d := range demand {
		totalRequired += d.RequiredHours
	}

	var availableDaily float64
	for _, w := range workers {
		if !w.Active {
			continue
		}
		if w.DailyHours > 0 {
			availableDaily += w.DailyHours
		}
	}

	requiredPerDay := totalRequired / float64(workingDays)
	requiredFTE := requiredPerDay / fullTimeHoursPerDay
	availableFTE := availableDaily / fullTimeHoursPerDay

	return dto.GlobalDigest{
		TotalRequiredHours: totalRequired,
		RequiredPerDay:     requiredPerDay,
		RequiredFTE:        round2(requiredFTE),
		AvailableFTE:       round2(availableFTE),
		GapFTE:             round2(requiredFTE - availableFTE),
	}, nil
}

// [自证通过] internal/service/engine.go
