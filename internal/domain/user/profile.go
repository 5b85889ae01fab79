package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/biztime"
)

// Profile is the portal-facing identity of an authenticated user. One profile
// exists per credential; the primary company association plus any additional
// associations bound the tenants a client can see.
type Profile struct {
	id                   uint
	fullName             string
	email                string
	phone                string
	role                 Role
	companyID            uint
	additionalCompanyIDs []uint
	forcePasswordChange  bool
	passwordHash         string
	emailConfirmed       bool
	createdAt            time.Time
	updatedAt            time.Time
}

func NewProfile(
	fullName string,
	email string,
	phone string,
	role Role,
	companyID uint,
	passwordHash string,
) (*Profile, error) {
	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &Profile{
		fullName:            fullName,
		email:               strings.ToLower(strings.TrimSpace(email)),
		phone:               phone,
		role:                role,
		companyID:           companyID,
		passwordHash:        passwordHash,
		forcePasswordChange: true,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructProfile(
	id uint,
	fullName string,
	email string,
	phone string,
	role Role,
	companyID uint,
	additionalCompanyIDs []uint,
	forcePasswordChange bool,
	passwordHash string,
	emailConfirmed bool,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	if additionalCompanyIDs == nil {
		additionalCompanyIDs = []uint{}
	}

	return &Profile{
		id:                   id,
		fullName:             fullName,
		email:                email,
		phone:                phone,
		role:                 role,
		companyID:            companyID,
		additionalCompanyIDs: additionalCompanyIDs,
		forcePasswordChange:  forcePasswordChange,
		passwordHash:         passwordHash,
		emailConfirmed:       emailConfirmed,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func (p *Profile) ID() uint {
	return p.id
}

func (p *Profile) FullName() string {
	return p.fullName
}

func (p *Profile) Email() string {
	return p.email
}

func (p *Profile) Phone() string {
	return p.phone
}

func (p *Profile) Role() Role {
	return p.role
}

func (p *Profile) CompanyID() uint {
	return p.companyID
}

func (p *Profile) AdditionalCompanyIDs() []uint {
	ids := make([]uint, len(p.additionalCompanyIDs))
	copy(ids, p.additionalCompanyIDs)
	return ids
}

// AllowedCompanyIDs returns the primary association followed by any
// additional ones, deduplicated. Staff roles are not bounded by this list.
func (p *Profile) AllowedCompanyIDs() []uint {
	seen := make(map[uint]bool, len(p.additionalCompanyIDs)+1)
	ids := make([]uint, 0, len(p.additionalCompanyIDs)+1)
	if p.companyID != 0 {
		seen[p.companyID] = true
		ids = append(ids, p.companyID)
	}
	for _, id := range p.additionalCompanyIDs {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// CanAccessCompany reports whether this profile may operate on the given
// tenant. Staff roles may access every tenant.
func (p *Profile) CanAccessCompany(companyID uint) bool {
	if p.role.IsStaff() {
		return true
	}
	for _, id := range p.AllowedCompanyIDs() {
		if id == companyID {
			return true
		}
	}
	return false
}

func (p *Profile) ForcePasswordChange() bool {
	return p.forcePasswordChange
}

func (p *Profile) PasswordHash() string {
	return p.passwordHash
}

func (p *Profile) EmailConfirmed() bool {
	return p.emailConfirmed
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Profile) ConfirmEmail() {
	p.emailConfirmed = true
	p.updatedAt = biztime.NowUTC()
}

func (p *Profile) UpdateContact(fullName, phone string) error {
	if len(fullName) == 0 {
		return fmt.Errorf("full name is required")
	}
	p.fullName = fullName
	p.phone = phone
	p.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateByAdmin applies an administrative edit: role, associations, and the
// force-password-change flag.
func (p *Profile) UpdateByAdmin(fullName, phone string, role Role, companyID uint, additionalCompanyIDs []uint, forcePasswordChange bool) error {
	if len(fullName) == 0 {
		return fmt.Errorf("full name is required")
	}
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}

	if additionalCompanyIDs == nil {
		additionalCompanyIDs = []uint{}
	}

	p.fullName = fullName
	p.phone = phone
	p.role = role
	p.companyID = companyID
	p.additionalCompanyIDs = additionalCompanyIDs
	p.forcePasswordChange = forcePasswordChange
	p.updatedAt = biztime.NowUTC()
	return nil
}

// ChangePassword installs a new password hash and clears the forced-change
// flag.
func (p *Profile) ChangePassword(newHash string) error {
	if len(newHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	p.passwordHash = newHash
	p.forcePasswordChange = false
	p.updatedAt = biztime.NowUTC()
	return nil
}
