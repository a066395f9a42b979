package interfaces

import "gestao_obras/internal/domain/entities"

// IWorkbookRenderer renders back-office xlsx deliverables. Implemented in
// infrastructure/reports; rendering is pure (no I/O beyond the byte slice).

type IWorkbookRenderer interface {
	AnalyticsWorkbook(summary entities.AnalyticsSummary) ([]byte, error)
	BulletinWorkbook(b entities.MeasurementBulletin) ([]byte, error)
}

// IDailyReportRenderer renders the printable daily report PDF.

type IDailyReportRenderer interface {
	DailyReportPDF(rdo entities.RDO, project entities.Project) ([]byte, error)
}
