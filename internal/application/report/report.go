// Package report builds the ticket report: filtered rows enriched with
// company and creator data, summarized and rendered to PDF.
package report

import "time"

// Row is one ticket line in the report table.
type Row struct {
	TicketID       uint
	CreatedAt      time.Time
	CompanyName    string
	CNPJ           string
	Manufacturer   string
	EquipmentModel string
	RequesterName  string
	CreatorName    string
	Status         string
	ClosedAt       *time.Time
}

// Data is everything the renderer needs for one report.
type Data struct {
	Title             string
	GeneratedAt       time.Time
	FilterSummary     []string
	TotalTickets      int
	DistinctCompanies int
	DistinctUsers     int
	CountsByStatus    map[string]int
	Rows              []Row
}

// Renderer turns report data into a downloadable document.
type Renderer interface {
	Render(data Data) ([]byte, error)
}

// Filename returns the download name for a report generated on the given
// date.
func Filename(t time.Time) string {
	return "relatorio-chamados-" + t.Format("2006-01-02") + ".pdf"
}
