package ticket

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinDescriptionLength is the minimum number of characters a problem
// description must carry before a ticket can be opened.
const MinDescriptionLength = 30

// Application type and card technology labels captured by the wizard. They
// mirror the equipment context values so denormalized form data stays
// comparable with the equipment catalog.
const (
	ApplicationAccess    = "Acesso"
	ApplicationTimeClock = "Ponto"
)

var validCardTypes = map[string]bool{
	"Smartcard":       true,
	"Proximidade HID": true,
	"Biometria":       true,
	"Facial":          true,
}

// CardTypes lists the supported identification technologies in wizard order.
func CardTypes() []string {
	return []string{"Smartcard", "Proximidade HID", "Biometria", "Facial"}
}

func IsValidCardType(t string) bool {
	return validCardTypes[t]
}

// FormData is the full wizard payload stored alongside a ticket. Company and
// equipment fields are denormalized at submission time so the ticket remains
// readable even if the source records change later.
type FormData struct {
	CNPJ                 string `json:"cnpj"`
	CompanyName          string `json:"company_name"`
	CompanyAddress       string `json:"company_address,omitempty"`
	FullAddress          string `json:"full_address"`
	Manufacturer         string `json:"manufacturer"`
	EquipmentModel       string `json:"equipment_model"`
	SerialNumber         string `json:"serial_number,omitempty"`
	InternalLocation     string `json:"internal_location,omitempty"`
	InstallationLocation string `json:"installation_location,omitempty"`
	ApplicationType      string `json:"application_type,omitempty"`
	CardType             string `json:"card_type,omitempty"`
	PriorRemediation     string `json:"prior_remediation,omitempty"`
	NeedsIntegration     bool   `json:"needs_integration,omitempty"`
	IntegrationNotes     string `json:"integration_notes,omitempty"`
	RequesterName        string `json:"requester_name"`
	RequesterPhone       string `json:"requester_phone"`
	RequesterEmail       string `json:"requester_email"`
	Description          string `json:"description"`
	CEP                  string `json:"cep,omitempty"`
	AddressNumber        string `json:"address_number,omitempty"`
}

// Validate checks the fields filled on the final wizard step, in the order
// the form presents them. Company and equipment fields are validated by the
// earlier steps that collect them. The description minimum counts characters,
// not bytes, so accented text is measured the way the user sees it.
func (f FormData) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(f.Description)) < MinDescriptionLength {
		return fmt.Errorf("description must have at least %d characters", MinDescriptionLength)
	}
	if strings.TrimSpace(f.FullAddress) == "" {
		return fmt.Errorf("full address is required")
	}
	if strings.TrimSpace(f.RequesterName) == "" {
		return fmt.Errorf("requester name is required")
	}
	if strings.TrimSpace(f.RequesterPhone) == "" {
		return fmt.Errorf("requester phone is required")
	}
	if strings.TrimSpace(f.RequesterEmail) == "" {
		return fmt.Errorf("requester email is required")
	}
	if f.CardType != "" && !IsValidCardType(f.CardType) {
		return fmt.Errorf("invalid card type: %s", f.CardType)
	}
	return nil
}
