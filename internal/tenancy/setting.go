package tenancy

import (
	"fmt"
	"strings"

	apperrors "bizhub-backend/internal/errors"

	"github.com/google/uuid"
)

const (
	// SettingName is the Postgres session variable holding the current tenant.
	SettingName = "app.current_tenant_id"
	// AllTenantsSettingName is set to "on" for administrative transactions.
	AllTenantsSettingName = "app.all_tenants"
	// Unset is the sentinel meaning "no tenant bound".
	Unset = "unset"
)

// ParseSetting parses a raw tenant setting. Empty and "unset" mean no tenant.
// Any other value must be a UUID.
func ParseSetting(raw string) (uuid.UUID, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == Unset {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("%w: %q: %v", apperrors.ErrInvalidTenantSetting, raw, err)
	}
	return id, true, nil
}

// FormatSetting renders a tenant for the session variable.
func FormatSetting(id uuid.UUID) string {
	if id == uuid.Nil {
		return Unset
	}
	return id.String()
}
