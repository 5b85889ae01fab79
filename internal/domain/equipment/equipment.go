package equipment

import (
	"fmt"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/biztime"
)

// ApplicationType classifies what the equipment controls.
type ApplicationType string

const (
	ApplicationAccess    ApplicationType = "Acesso"
	ApplicationTimeClock ApplicationType = "Ponto"
)

func (a ApplicationType) IsValid() bool {
	return a == ApplicationAccess || a == ApplicationTimeClock
}

func (a ApplicationType) String() string {
	return string(a)
}

// Equipment belongs to exactly one company. Manufacturer and model may come
// from the static catalog or be freely typed.
type Equipment struct {
	id                   uint
	companyID            uint
	manufacturer         string
	model                string
	serialNumber         string
	internalLocation     string
	installationLocation string
	applicationType      ApplicationType
	technology           string
	createdAt            time.Time
	updatedAt            time.Time
}

func NewEquipment(
	companyID uint,
	manufacturer string,
	model string,
	serialNumber string,
	internalLocation string,
	installationLocation string,
	applicationType ApplicationType,
	technology string,
) (*Equipment, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if len(manufacturer) == 0 {
		return nil, fmt.Errorf("manufacturer is required")
	}
	if len(model) == 0 {
		return nil, fmt.Errorf("model is required")
	}
	if applicationType != "" && !applicationType.IsValid() {
		return nil, fmt.Errorf("invalid application type: %s", applicationType)
	}

	now := biztime.NowUTC()
	return &Equipment{
		companyID:            companyID,
		manufacturer:         manufacturer,
		model:                model,
		serialNumber:         serialNumber,
		internalLocation:     internalLocation,
		installationLocation: installationLocation,
		applicationType:      applicationType,
		technology:           technology,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructEquipment(
	id uint,
	companyID uint,
	manufacturer string,
	model string,
	serialNumber string,
	internalLocation string,
	installationLocation string,
	applicationType ApplicationType,
	technology string,
	createdAt, updatedAt time.Time,
) (*Equipment, error) {
	if id == 0 {
		return nil, fmt.Errorf("equipment ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}

	return &Equipment{
		id:                   id,
		companyID:            companyID,
		manufacturer:         manufacturer,
		model:                model,
		serialNumber:         serialNumber,
		internalLocation:     internalLocation,
		installationLocation: installationLocation,
		applicationType:      applicationType,
		technology:           technology,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func (e *Equipment) ID() uint {
	return e.id
}

func (e *Equipment) CompanyID() uint {
	return e.companyID
}

func (e *Equipment) Manufacturer() string {
	return e.manufacturer
}

func (e *Equipment) Model() string {
	return e.model
}

func (e *Equipment) SerialNumber() string {
	return e.serialNumber
}

func (e *Equipment) InternalLocation() string {
	return e.internalLocation
}

func (e *Equipment) InstallationLocation() string {
	return e.installationLocation
}

func (e *Equipment) ApplicationType() ApplicationType {
	return e.applicationType
}

// HasApplicationType reports whether the equipment already supplies the
// application type. When it does, the ticket form carries the value through
// without rendering its section.
func (e *Equipment) HasApplicationType() bool {
	return e.applicationType != ""
}

func (e *Equipment) Technology() string {
	return e.technology
}

func (e *Equipment) HasTechnology() bool {
	return len(e.technology) > 0
}

func (e *Equipment) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Equipment) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Equipment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("equipment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("equipment ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Equipment) Update(
	manufacturer string,
	model string,
	serialNumber string,
	internalLocation string,
	installationLocation string,
	applicationType ApplicationType,
	technology string,
) error {
	if len(manufacturer) == 0 {
		return fmt.Errorf("manufacturer is required")
	}
	if len(model) == 0 {
		return fmt.Errorf("model is required")
	}
	if applicationType != "" && !applicationType.IsValid() {
		return fmt.Errorf("invalid application type: %s", applicationType)
	}

	e.manufacturer = manufacturer
	e.model = model
	e.serialNumber = serialNumber
	e.internalLocation = internalLocation
	e.installationLocation = installationLocation
	e.applicationType = applicationType
	e.technology = technology
	e.updatedAt = biztime.NowUTC()
	return nil
}
