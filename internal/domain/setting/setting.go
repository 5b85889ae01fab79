// Package setting holds portal-wide configuration stored as key/value pairs.
package setting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/biztime"
)

// Known setting keys and their defaults.
const (
	KeyPortalName   = "portal_name"
	KeyLogoURL      = "logo_url"
	KeyPrimaryColor = "primary_color"

	DefaultPortalName   = "Portal de Chamados"
	DefaultPrimaryColor = "#2563eb"
)

var validKeys = map[string]bool{
	KeyPortalName:   true,
	KeyLogoURL:      true,
	KeyPrimaryColor: true,
}

func IsValidKey(key string) bool {
	return validKeys[key]
}

type Setting struct {
	key       string
	value     string
	updatedAt time.Time
}

func NewSetting(key, value string) (*Setting, error) {
	if !IsValidKey(key) {
		return nil, fmt.Errorf("unknown setting key: %s", key)
	}
	if key == KeyPrimaryColor {
		if err := validateColor(value); err != nil {
			return nil, err
		}
	}
	return &Setting{
		key:       key,
		value:     value,
		updatedAt: biztime.NowUTC(),
	}, nil
}

// ReconstructSetting rebuilds a setting from persistence without validation.
func ReconstructSetting(key, value string, updatedAt time.Time) *Setting {
	return &Setting{key: key, value: value, updatedAt: updatedAt}
}

func (s *Setting) Key() string          { return s.key }
func (s *Setting) Value() string        { return s.value }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

func validateColor(value string) error {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "#") || (len(v) != 7 && len(v) != 4) {
		return fmt.Errorf("primary color must be a hex value like #2563eb")
	}
	for _, r := range v[1:] {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return fmt.Errorf("primary color must be a hex value like #2563eb")
		}
	}
	return nil
}

type Repository interface {
	Get(ctx context.Context, key string) (*Setting, error)
	GetAll(ctx context.Context) ([]*Setting, error)
	Upsert(ctx context.Context, s *Setting) error
}
