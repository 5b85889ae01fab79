// Package wizard models the three-step ticket creation flow. A Draft is the
// per-user progress snapshot, serializable so it can be parked in Redis
// between requests.
package wizard

import (
	"fmt"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/biztime"
)

// Step identifies the wizard step the user is on. Steps are strictly
// ordered; moving backward discards everything collected by later steps.
type Step string

const (
	StepCompanyLookup      Step = "company_lookup"
	StepEquipmentSelection Step = "equipment_selection"
	StepTicketDetails      Step = "ticket_details"
)

// CompanySnapshot carries the confirmed company data into the draft.
type CompanySnapshot struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CNPJ        string `json:"cnpj"`
	FullAddress string `json:"full_address"`
}

// EquipmentSnapshot carries the selected equipment data into the draft.
// ID is zero when the user registered a model not yet catalogued. The
// HasApplicationType and HasTechnology flags tell the details step which
// sections it can skip.
type EquipmentSnapshot struct {
	ID                   uint   `json:"id"`
	Manufacturer         string `json:"manufacturer"`
	Model                string `json:"model"`
	SerialNumber         string `json:"serial_number"`
	InternalLocation     string `json:"internal_location"`
	InstallationLocation string `json:"installation_location"`
	ApplicationType      string `json:"application_type"`
	Technology           string `json:"technology"`
	HasApplicationType   bool   `json:"has_application_type"`
	HasTechnology        bool   `json:"has_technology"`
}

// Draft is one user's in-progress ticket. It is valid JSON at every step so
// the flow survives process restarts.
type Draft struct {
	UserID    uint               `json:"user_id"`
	Step      Step               `json:"step"`
	Company   *CompanySnapshot   `json:"company,omitempty"`
	Equipment *EquipmentSnapshot `json:"equipment,omitempty"`
	StartedAt time.Time          `json:"started_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewDraft starts a fresh wizard at the company lookup step.
func NewDraft(userID uint) *Draft {
	now := biztime.NowUTC()
	return &Draft{
		UserID:    userID,
		Step:      StepCompanyLookup,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// ConfirmCompany records the looked-up company and advances to equipment
// selection.
func (d *Draft) ConfirmCompany(c CompanySnapshot) error {
	if d.Step != StepCompanyLookup {
		return fmt.Errorf("company can only be confirmed at the %s step, draft is at %s", StepCompanyLookup, d.Step)
	}
	if c.ID == 0 {
		return fmt.Errorf("company snapshot requires an ID")
	}
	d.Company = &c
	d.Step = StepEquipmentSelection
	d.UpdatedAt = biztime.NowUTC()
	return nil
}

// SelectEquipment records the chosen equipment and advances to the details
// step.
func (d *Draft) SelectEquipment(e EquipmentSnapshot) error {
	if d.Step != StepEquipmentSelection {
		return fmt.Errorf("equipment can only be selected at the %s step, draft is at %s", StepEquipmentSelection, d.Step)
	}
	if e.Model == "" {
		return fmt.Errorf("equipment snapshot requires a model")
	}
	d.Equipment = &e
	d.Step = StepTicketDetails
	d.UpdatedAt = biztime.NowUTC()
	return nil
}

// Back moves one step backward and discards the state the abandoned step
// had collected. Going back from the first step is a no-op.
func (d *Draft) Back() {
	switch d.Step {
	case StepTicketDetails:
		d.Equipment = nil
		d.Step = StepEquipmentSelection
	case StepEquipmentSelection:
		d.Company = nil
		d.Equipment = nil
		d.Step = StepCompanyLookup
	}
	d.UpdatedAt = biztime.NowUTC()
}

// Reset discards everything and returns the draft to the first step.
func (d *Draft) Reset() {
	d.Company = nil
	d.Equipment = nil
	d.Step = StepCompanyLookup
	d.UpdatedAt = biztime.NowUTC()
}

// ReadyToSubmit reports whether the draft reached the details step with the
// data the earlier steps were required to collect.
func (d *Draft) ReadyToSubmit() bool {
	return d.Step == StepTicketDetails && d.Company != nil && d.Equipment != nil
}
