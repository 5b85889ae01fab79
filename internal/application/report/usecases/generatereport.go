package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/report"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/biztime"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

// reportTimeout bounds the whole report build. Reports scan more data than
// interactive listings, so they get a longer window.
const reportTimeout = 20 * time.Second

const (
	MsgReportForbidden = "Apenas a equipe pode gerar relatórios."
	MsgReportTimeout   = "A geração do relatório demorou demais. Refine os filtros e tente novamente."

	reportTitle = "Relatório de Chamados"
)

// GenerateReportCommand carries the report filters. All set filters apply
// together.
type GenerateReportCommand struct {
	UserID      uint
	Status      string
	CompanyID   uint
	EquipmentID uint
	CreatedBy   uint
	DateFrom    *time.Time
	DateTo      *time.Time

	// Substring filters, matched case-insensitively after the enrichment
	// joins. Company matches the current name, the denormalized snapshot
	// name or the CNPJ; User matches the creator's name or email.
	Manufacturer string
	Company      string
	User         string
}

type GenerateReportResult struct {
	PDF      []byte
	Filename string
}

type GenerateReportUseCase struct {
	ticketRepo  ticket.Repository
	companyRepo company.Repository
	userRepo    user.Repository
	renderer    report.Renderer
	logger      logger.Interface
}

func NewGenerateReportUseCase(
	ticketRepo ticket.Repository,
	companyRepo company.Repository,
	userRepo user.Repository,
	renderer report.Renderer,
	log logger.Interface,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		ticketRepo:  ticketRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		logger:      log,
	}
}

func (uc *GenerateReportUseCase) Execute(ctx context.Context, cmd GenerateReportCommand) (*GenerateReportResult, error) {
	profile, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if !profile.Role().IsStaff() {
		return nil, apperrors.NewForbiddenError(MsgReportForbidden)
	}

	filter, summary, err := uc.buildFilter(ctx, cmd)
	if err != nil {
		return nil, err
	}

	reportCtx, cancel := context.WithTimeout(ctx, reportTimeout)
	defer cancel()

	tickets, err := uc.ticketRepo.List(reportCtx, filter)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewTimeoutError(MsgReportTimeout)
		}
		uc.logger.Errorw("failed to load tickets for report", "error", err)
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}

	companies, creators, err := uc.enrich(reportCtx, tickets)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewTimeoutError(MsgReportTimeout)
		}
		return nil, err
	}

	tickets = uc.applyTextFilters(cmd, tickets, companies, creators)

	data := uc.assemble(tickets, companies, creators, summary)

	pdf, err := uc.renderer.Render(data)
	if err != nil {
		uc.logger.Errorw("failed to render report", "error", err)
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	uc.logger.Infow("report generated", "tickets", len(tickets), "by", cmd.UserID)
	return &GenerateReportResult{PDF: pdf, Filename: report.Filename(data.GeneratedAt)}, nil
}

func (uc *GenerateReportUseCase) buildFilter(ctx context.Context, cmd GenerateReportCommand) (ticket.Filter, []string, error) {
	var filter ticket.Filter
	var summary []string

	if cmd.Status != "" {
		st, err := ticket.NewStatus(cmd.Status)
		if err != nil {
			return filter, nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = &st
		summary = append(summary, "Status: "+st.DisplayName())
	}
	if cmd.CompanyID != 0 {
		filter.CompanyIDs = []uint{cmd.CompanyID}
		if c, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID); err == nil {
			summary = append(summary, "Empresa: "+c.Name())
		} else {
			summary = append(summary, fmt.Sprintf("Empresa: #%d", cmd.CompanyID))
		}
	}
	if cmd.EquipmentID != 0 {
		id := cmd.EquipmentID
		filter.EquipmentID = &id
		summary = append(summary, fmt.Sprintf("Equipamento: #%d", cmd.EquipmentID))
	}
	if cmd.CreatedBy != 0 {
		uid := cmd.CreatedBy
		filter.CreatedBy = &uid
		if p, err := uc.userRepo.GetByID(ctx, cmd.CreatedBy); err == nil {
			summary = append(summary, "Aberto por: "+p.FullName())
		} else {
			summary = append(summary, fmt.Sprintf("Aberto por: #%d", cmd.CreatedBy))
		}
	}
	if cmd.Manufacturer != "" {
		summary = append(summary, "Fabricante contém: "+cmd.Manufacturer)
	}
	if cmd.Company != "" {
		summary = append(summary, "Empresa contém: "+cmd.Company)
	}
	if cmd.User != "" {
		summary = append(summary, "Usuário contém: "+cmd.User)
	}
	if cmd.DateFrom != nil {
		from := biztime.StartOfDay(*cmd.DateFrom)
		filter.DateFrom = &from
		summary = append(summary, "De: "+biztime.FormatDate(from))
	}
	if cmd.DateTo != nil {
		to := biztime.EndOfDay(*cmd.DateTo)
		filter.DateTo = &to
		summary = append(summary, "Até: "+biztime.FormatDate(to))
	}
	if len(summary) == 0 {
		summary = append(summary, "Sem filtros (todos os chamados)")
	}
	return filter, summary, nil
}

// enrich loads the companies and creators referenced by the tickets. The
// two fetches are independent and run concurrently.
func (uc *GenerateReportUseCase) enrich(ctx context.Context, tickets []*ticket.Ticket) (map[uint]*company.Company, map[uint]*user.Profile, error) {
	companyIDs := make([]uint, 0, len(tickets))
	creatorIDs := make([]uint, 0, len(tickets))
	seenCompany := make(map[uint]bool)
	seenCreator := make(map[uint]bool)
	for _, t := range tickets {
		if !seenCompany[t.CompanyID()] {
			seenCompany[t.CompanyID()] = true
			companyIDs = append(companyIDs, t.CompanyID())
		}
		if !seenCreator[t.CreatedBy()] {
			seenCreator[t.CreatedBy()] = true
			creatorIDs = append(creatorIDs, t.CreatedBy())
		}
	}

	companies := make(map[uint]*company.Company, len(companyIDs))
	creators := make(map[uint]*user.Profile, len(creatorIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.companyRepo.GetByIDs(gctx, companyIDs)
		if err != nil {
			return fmt.Errorf("failed to load companies: %w", err)
		}
		for _, c := range list {
			companies[c.ID()] = c
		}
		return nil
	})
	g.Go(func() error {
		list, err := uc.userRepo.GetByIDs(gctx, creatorIDs)
		if err != nil {
			return fmt.Errorf("failed to load creators: %w", err)
		}
		for _, p := range list {
			creators[p.ID()] = p
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to enrich report", "error", err)
		return nil, nil, err
	}
	return companies, creators, nil
}

// applyTextFilters narrows the ticket set by the free-text filters. They run
// in memory because they match against joined company and creator data.
func (uc *GenerateReportUseCase) applyTextFilters(
	cmd GenerateReportCommand,
	tickets []*ticket.Ticket,
	companies map[uint]*company.Company,
	creators map[uint]*user.Profile,
) []*ticket.Ticket {
	if cmd.Manufacturer == "" && cmd.Company == "" && cmd.User == "" {
		return tickets
	}

	manufacturerQ := strings.ToLower(cmd.Manufacturer)
	companyQ := strings.ToLower(cmd.Company)
	companyDigits := utils.StripDigits(cmd.Company)
	userQ := strings.ToLower(cmd.User)

	out := make([]*ticket.Ticket, 0, len(tickets))
	for _, t := range tickets {
		fd := t.FormData()

		if manufacturerQ != "" && !strings.Contains(strings.ToLower(fd.Manufacturer), manufacturerQ) {
			continue
		}

		if companyQ != "" {
			name := fd.CompanyName
			if c, ok := companies[t.CompanyID()]; ok {
				name = c.Name()
			}
			byName := strings.Contains(strings.ToLower(name), companyQ)
			byCNPJ := companyDigits != "" && strings.Contains(utils.StripDigits(fd.CNPJ), companyDigits)
			if !byName && !byCNPJ {
				continue
			}
		}

		if userQ != "" {
			p, ok := creators[t.CreatedBy()]
			if !ok {
				continue
			}
			if !strings.Contains(strings.ToLower(p.FullName()), userQ) &&
				!strings.Contains(strings.ToLower(p.Email()), userQ) {
				continue
			}
		}

		out = append(out, t)
	}
	return out
}

func (uc *GenerateReportUseCase) assemble(
	tickets []*ticket.Ticket,
	companies map[uint]*company.Company,
	creators map[uint]*user.Profile,
	summary []string,
) report.Data {
	counts := make(map[string]int)
	rows := make([]report.Row, 0, len(tickets))
	distinct := make(map[uint]bool)
	distinctUsers := make(map[uint]bool)

	for _, t := range tickets {
		counts[t.Status().DisplayName()]++
		distinct[t.CompanyID()] = true
		distinctUsers[t.CreatedBy()] = true

		fd := t.FormData()
		row := report.Row{
			TicketID:       t.ID(),
			CreatedAt:      t.CreatedAt(),
			CompanyName:    fd.CompanyName,
			CNPJ:           fd.CNPJ,
			Manufacturer:   fd.Manufacturer,
			EquipmentModel: fd.EquipmentModel,
			RequesterName:  fd.RequesterName,
			Status:         t.Status().DisplayName(),
			ClosedAt:       t.ClosedAt(),
		}
		if c, ok := companies[t.CompanyID()]; ok {
			row.CompanyName = c.Name()
		}
		if p, ok := creators[t.CreatedBy()]; ok {
			row.CreatorName = p.FullName()
		}
		rows = append(rows, row)
	}

	return report.Data{
		Title:             reportTitle,
		GeneratedAt:       time.Now(),
		FilterSummary:     summary,
		TotalTickets:      len(tickets),
		DistinctCompanies: len(distinct),
		DistinctUsers:     len(distinctUsers),
		CountsByStatus:    counts,
		Rows:              rows,
	}
}
