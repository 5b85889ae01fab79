// Package pdf renders the ticket report as a landscape A4 document.
package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/report"
)

const dateFormat = "02/01/2006"

// Renderer implements report.Renderer with gofpdf.
type Renderer struct{}

// NewRenderer creates a new PDF renderer.
func NewRenderer() report.Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(data report.Data) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	// Core fonts are cp1252; pt-BR accents need the translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(data.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, tr("Gerado em "+data.GeneratedAt.Format(dateFormat+" 15:04")), "", 1, "L", false, 0, "")
	for _, line := range data.FilterSummary {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	summary := fmt.Sprintf("%d chamados - %d empresas - %d usuários", data.TotalTickets, data.DistinctCompanies, data.DistinctUsers)
	pdf.CellFormat(0, 6, tr(summary), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, status := range sortedStatuses(data.CountsByStatus) {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s: %d", status, data.CountsByStatus[status])), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	r.renderTable(pdf, tr, data.Rows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderTable(pdf *gofpdf.Fpdf, tr func(string) string, rows []report.Row) {
	headers := []string{"Nº", "Aberto em", "Empresa", "CNPJ", "Usuário", "Fabricante", "Modelo", "Status", "Fechado em"}
	widths := []float64{12, 20, 48, 32, 40, 32, 40, 22, 20}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for i, row := range rows {
		fill := i%2 == 1
		if fill {
			pdf.SetFillColor(245, 245, 245)
		}

		closed := "-"
		if row.ClosedAt != nil {
			closed = row.ClosedAt.Format(dateFormat)
		}

		creator := row.CreatorName
		if creator == "" {
			creator = row.RequesterName
		}
		cells := []string{
			strconv.FormatUint(uint64(row.TicketID), 10),
			row.CreatedAt.Format(dateFormat),
			row.CompanyName,
			row.CNPJ,
			creator,
			row.Manufacturer,
			row.EquipmentModel,
			row.Status,
			closed,
		}
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 6, tr(cell), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

func sortedStatuses(counts map[string]int) []string {
	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	return statuses
}
