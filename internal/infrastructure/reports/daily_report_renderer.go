package reports

import (
	"bytes"
	"fmt"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// DailyReportRenderer builds the printable RDO PDF handed to the client's
// field inspector.

type DailyReportRenderer struct{}

var _ interfaces.IDailyReportRenderer = (*DailyReportRenderer)(nil)

func NewDailyReportRenderer() *DailyReportRenderer {
	return &DailyReportRenderer{}
}

func (r *DailyReportRenderer) DailyReportPDF(rdo entities.RDO, project entities.Project) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetMargins(10, 10, 10)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, "RELATORIO DIARIO DE OBRA")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(95, 6, fmt.Sprintf("Data: %s", rdo.Date.Format("02/01/2006")))
	pdf.Cell(95, 6, fmt.Sprintf("Status: %s", rdo.Status))
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	if project.Name != "" {
		pdf.Cell(95, 6, fmt.Sprintf("Obra: %s", project.Name))
		pdf.Cell(95, 6, fmt.Sprintf("Local: %s", project.Location))
	} else {
		pdf.Cell(190, 6, fmt.Sprintf("Obra: %s", rdo.ProjectID))
	}
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(25, 8, "Indice", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Km", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Cidade", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Trecho", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qtd", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Preco", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, item := range rdo.Items {
		pdf.CellFormat(25, 7, item.IndexID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%.3f", item.Km), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, item.City, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, item.Segment, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", item.FrozenPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", item.TotalValue), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(155, 8, "Total do Dia")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", rdo.TotalDailyValue), "1", 1, "R", false, 0, "")

	if len(rdo.Impacts) > 0 {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 8, "Impactos")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		for _, impact := range rdo.Impacts {
			pdf.MultiCell(190, 6, fmt.Sprintf("[%s] %s (%s)", impact.Type, impact.Description, impact.Duration), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
