package wizard

import (
	"github.com/LucasFelipeJesus/portal-chamados/internal/application/wizard/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/dto"
)

type LookupCompanyRequest struct {
	CNPJ string `json:"cnpj" binding:"required"`
}

// LookupCompanyResponse carries either the registered company or, for staff
// looking up an unregistered CNPJ, the registry preview to register from.
type LookupCompanyResponse struct {
	Company         *dto.CompanyResponse         `json:"company,omitempty"`
	RegistryPreview *dto.RegistryPreviewResponse `json:"registry_preview,omitempty"`
}

func newLookupCompanyResponse(result *usecases.LookupCompanyResult) LookupCompanyResponse {
	resp := LookupCompanyResponse{
		RegistryPreview: dto.NewRegistryPreviewResponse(result.RegistryPreview),
	}
	if result.Company != nil {
		company := dto.NewCompanyResponse(result.Company)
		resp.Company = &company
	}
	return resp
}

type ConfirmCompanyRequest struct {
	CompanyID uint `json:"company_id" binding:"required"`
}

type SelectEquipmentRequest struct {
	EquipmentID uint `json:"equipment_id"`

	NewManufacturer         string `json:"new_manufacturer"`
	NewModel                string `json:"new_model"`
	NewSerialNumber         string `json:"new_serial_number"`
	NewInternalLocation     string `json:"new_internal_location"`
	NewInstallationLocation string `json:"new_installation_location"`
	NewApplicationType      string `json:"new_application_type"`
	NewTechnology           string `json:"new_technology"`
}

type SubmitTicketRequest struct {
	Description      string `json:"description" binding:"required"`
	FullAddress      string `json:"full_address" binding:"required"`
	RequesterName    string `json:"requester_name" binding:"required"`
	RequesterPhone   string `json:"requester_phone" binding:"required"`
	RequesterEmail   string `json:"requester_email" binding:"required"`
	PriorRemediation string `json:"prior_remediation"`
	NeedsIntegration bool   `json:"needs_integration"`
	IntegrationNotes string `json:"integration_notes"`
	ApplicationType  string `json:"application_type"`
	CardType         string `json:"card_type"`
	CEP              string `json:"cep"`
	AddressNumber    string `json:"address_number"`
}

type ListEquipmentResponse struct {
	Equipment     []dto.EquipmentResponse `json:"equipment"`
	Manufacturers []string                `json:"manufacturers"`
}
