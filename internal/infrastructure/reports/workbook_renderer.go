package reports

import (
	"fmt"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

// WorkbookRenderer builds the xlsx deliverables the back office downloads.
// Rendering is pure: it takes an already-computed aggregate and returns the
// file bytes.

type WorkbookRenderer struct{}

var _ interfaces.IWorkbookRenderer = (*WorkbookRenderer)(nil)

func NewWorkbookRenderer() *WorkbookRenderer {
	return &WorkbookRenderer{}
}

// AnalyticsWorkbook renders the planned-vs-real summary: one sheet for the
// production items, one for the fleet, totals at the bottom of each.
func (r *WorkbookRenderer) AnalyticsWorkbook(summary entities.AnalyticsSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const itemsSheet = "Producao"
	const fleetSheet = "Frota"

	index, err := f.NewSheet(itemsSheet)
	if err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(fleetSheet); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(itemsSheet, "A1", fmt.Sprintf("Planejado x Realizado - %02d/%d", summary.Month, summary.Year))
	f.SetCellValue(itemsSheet, "A2", "Projeto")
	f.SetCellValue(itemsSheet, "B2", summary.ProjectID)

	itemHeaders := []string{"Codigo SAP", "Descricao", "Unidade", "Qtd Planejada", "Qtd Real", "Valor Planejado", "Valor Real", "Delta", "Performance %"}
	for col, h := range itemHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 4)
		f.SetCellValue(itemsSheet, cell, h)
	}
	row := 5
	for _, item := range summary.Items {
		values := []any{item.CodeSAP, item.Description, item.Unit, item.PlannedQty, item.RealQty, item.PlannedValue, item.RealValue, item.DeltaValue, item.Performance}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(itemsSheet, cell, v)
		}
		row++
	}
	row++
	f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", row), "Receita Planejada")
	f.SetCellValue(itemsSheet, fmt.Sprintf("B%d", row), summary.TotalPlannedRevenue)
	f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", row+1), "Receita Real")
	f.SetCellValue(itemsSheet, fmt.Sprintf("B%d", row+1), summary.TotalRealRevenue)
	f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", row+2), "Aderencia %")
	f.SetCellValue(itemsSheet, fmt.Sprintf("B%d", row+2), summary.RevenueCompliance)

	fleetHeaders := []string{"Codigo", "Equipamento", "Receita Planejada", "Receita Real", "Custo Planejado", "Custo Real", "Margem Real"}
	for col, h := range fleetHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(fleetSheet, cell, h)
	}
	row = 2
	for _, eq := range summary.Fleet {
		values := []any{eq.InternalCode, eq.Name, eq.PlannedRevenue, eq.RealRevenue, eq.PlannedCost, eq.RealCost, eq.RealMargin}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(fleetSheet, cell, v)
		}
		row++
	}
	row++
	f.SetCellValue(fleetSheet, fmt.Sprintf("A%d", row), "Custo Planejado Total")
	f.SetCellValue(fleetSheet, fmt.Sprintf("B%d", row), summary.TotalPlannedCost)
	f.SetCellValue(fleetSheet, fmt.Sprintf("A%d", row+1), "Custo Real Total")
	f.SetCellValue(fleetSheet, fmt.Sprintf("B%d", row+1), summary.TotalRealCost)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BulletinWorkbook renders a stored measurement bulletin back into a
// spreadsheet, one line item per row, stored values as-is.
func (r *WorkbookRenderer) BulletinWorkbook(b entities.MeasurementBulletin) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Boletim"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheet, "A1", "Boletim de Medicao")
	f.SetCellValue(sheet, "A2", "Projeto")
	f.SetCellValue(sheet, "B2", b.ProjectID)
	f.SetCellValue(sheet, "A3", "Periodo")
	f.SetCellValue(sheet, "B3", b.Period)
	f.SetCellValue(sheet, "A4", "Referencia")
	f.SetCellValue(sheet, "B4", b.ReferenceDate.Format("02/01/2006"))
	f.SetCellValue(sheet, "A5", "Tipo")
	f.SetCellValue(sheet, "B5", string(b.Type))

	headers := []string{
		"Codigo SAP", "Descricao", "Unidade", "Preco Unitario", "Qtd Prevista",
		"Qtd Acum. Anterior", "Qtd Medida", "Qtd Acum. Total",
		"Valor Acum. Anterior", "Valor Medido", "Valor Acum. Total",
		"Valor Contrato", "Saldo", "Execucao %",
	}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 7)
		f.SetCellValue(sheet, cell, h)
	}
	row := 8
	for _, item := range b.Items {
		values := []any{
			item.CodeSAP, item.Description, item.Unit, item.UnitPrice, item.PlannedQuantity,
			item.AccumulatedPreviousQty, item.MeasuredQuantity, item.TotalAccumulatedQty,
			item.AccumulatedPreviousValue, item.MeasuredValue, item.TotalAccumulatedValue,
			item.TotalContractValue, item.BalanceValue, item.ExecutionPercentage,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Valor Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), b.TotalValue)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
