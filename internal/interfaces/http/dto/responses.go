// Package dto holds the JSON representations shared by the HTTP handlers.
// Domain entities keep their fields private; these types are the wire shape.
package dto

import (
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/lookup"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/company"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/equipment"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/ticket"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/user"
	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
)

type TicketResponse struct {
	ID          uint            `json:"id"`
	CompanyID   uint            `json:"company_id"`
	EquipmentID *uint           `json:"equipment_id,omitempty"`
	CreatedBy   uint            `json:"created_by"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	FormData    ticket.FormData `json:"form_data"`
	ClosedAt    *time.Time      `json:"closed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID(),
		CompanyID:   t.CompanyID(),
		EquipmentID: t.EquipmentID(),
		CreatedBy:   t.CreatedBy(),
		Status:      t.Status().String(),
		StatusLabel: t.Status().DisplayName(),
		FormData:    t.FormData(),
		ClosedAt:    t.ClosedAt(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func NewTicketListResponse(tickets []*ticket.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewTicketResponse(t))
	}
	return out
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AuthorRole string    `json:"author_role"`
	Content    string    `json:"content"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewCommentResponse(c *ticket.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		AuthorName: c.AuthorName(),
		AuthorRole: c.AuthorRole(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}

func NewCommentListResponse(comments []*ticket.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentResponse(c))
	}
	return out
}

type ProfileResponse struct {
	ID                   uint      `json:"id"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	Role                 string    `json:"role"`
	CompanyID            uint      `json:"company_id"`
	AdditionalCompanyIDs []uint    `json:"additional_company_ids"`
	ForcePasswordChange  bool      `json:"force_password_change"`
	EmailConfirmed       bool      `json:"email_confirmed"`
	CreatedAt            time.Time `json:"created_at"`
}

func NewProfileResponse(p *user.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                   p.ID(),
		FullName:             p.FullName(),
		Email:                p.Email(),
		Phone:                p.Phone(),
		Role:                 p.Role().String(),
		CompanyID:            p.CompanyID(),
		AdditionalCompanyIDs: p.AdditionalCompanyIDs(),
		ForcePasswordChange:  p.ForcePasswordChange(),
		EmailConfirmed:       p.EmailConfirmed(),
		CreatedAt:            p.CreatedAt(),
	}
}

func NewProfileListResponse(profiles []*user.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewProfileResponse(p))
	}
	return out
}

type CompanyResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	CNPJ        string    `json:"cnpj"`
	FullAddress string    `json:"full_address"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		CNPJ:        c.CNPJ(),
		FullAddress: c.FullAddress(),
		CreatedAt:   c.CreatedAt(),
	}
}

func NewCompanyListResponse(companies []*company.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}

type EquipmentResponse struct {
	ID                   uint      `json:"id"`
	CompanyID            uint      `json:"company_id"`
	Manufacturer         string    `json:"manufacturer"`
	Model                string    `json:"model"`
	SerialNumber         string    `json:"serial_number"`
	InternalLocation     string    `json:"internal_location"`
	InstallationLocation string    `json:"installation_location"`
	ApplicationType      string    `json:"application_type"`
	Technology           string    `json:"technology"`
	CreatedAt            time.Time `json:"created_at"`
}

func NewEquipmentResponse(e *equipment.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:                   e.ID(),
		CompanyID:            e.CompanyID(),
		Manufacturer:         e.Manufacturer(),
		Model:                e.Model(),
		SerialNumber:         e.SerialNumber(),
		InternalLocation:     e.InternalLocation(),
		InstallationLocation: e.InstallationLocation(),
		ApplicationType:      e.ApplicationType().String(),
		Technology:           e.Technology(),
		CreatedAt:            e.CreatedAt(),
	}
}

func NewEquipmentListResponse(equipments []*equipment.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(equipments))
	for _, e := range equipments {
		out = append(out, NewEquipmentResponse(e))
	}
	return out
}

type DraftResponse struct {
	Step      string                    `json:"step"`
	Company   *wizard.CompanySnapshot   `json:"company,omitempty"`
	Equipment *wizard.EquipmentSnapshot `json:"equipment,omitempty"`
	StartedAt time.Time                 `json:"started_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

func NewDraftResponse(d *wizard.Draft) *DraftResponse {
	if d == nil {
		return nil
	}
	return &DraftResponse{
		Step:      string(d.Step),
		Company:   d.Company,
		Equipment: d.Equipment,
		StartedAt: d.StartedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type RegistryPreviewResponse struct {
	CNPJ        string `json:"cnpj"`
	LegalName   string `json:"legal_name"`
	TradeName   string `json:"trade_name"`
	FullAddress string `json:"full_address"`
}

func NewRegistryPreviewResponse(info *lookup.CompanyInfo) *RegistryPreviewResponse {
	if info == nil {
		return nil
	}
	return &RegistryPreviewResponse{
		CNPJ:        info.CNPJ,
		LegalName:   info.LegalName,
		TradeName:   info.TradeName,
		FullAddress: info.FullAddress(),
	}
}

type AddressResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

func NewAddressResponse(info *lookup.AddressInfo) AddressResponse {
	return AddressResponse{
		CEP:          info.CEP,
		Street:       info.Street,
		Neighborhood: info.Neighborhood,
		City:         info.City,
		State:        info.State,
	}
}
