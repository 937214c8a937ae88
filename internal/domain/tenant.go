package domain

import (
	"fmt"
	"regexp"
	"time"
)

const (
	TenantIDPrefix = "tenant_"
	MaxAliasLength = 10
)

var aliasPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

type Tenant struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	TenantID    *string   `gorm:"type:varchar(64);uniqueIndex:uniq_tenants_tenant_id" json:"tenant_id"`
	Logo        string    `gorm:"type:text;not null;default:''" json:"logo"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_tenants_name" json:"name"`
	Alias       string    `gorm:"type:varchar(10);not null;uniqueIndex:uniq_tenants_alias" json:"alias"`
	ActiveState bool      `gorm:"not null;default:true" json:"active_state"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// PublicID returns the assigned public identifier, or "" while the row is
// between insert and identifier assignment.
func (t *Tenant) PublicID() string {
	if t.TenantID == nil {
		return ""
	}
	return *t.TenantID
}

// FormatTenantID derives the public identifier from the surrogate id.
func FormatTenantID(id uint) string {
	return fmt.Sprintf("%s%d", TenantIDPrefix, id)
}

// ValidAlias reports whether alias is 1-10 ASCII letters or digits.
func ValidAlias(alias string) bool {
	return len(alias) > 0 && len(alias) <= MaxAliasLength && aliasPattern.MatchString(alias)
}

// TenantUpdate carries a partial update; nil fields are left untouched.
type TenantUpdate struct {
	Name        *string
	Alias       *string
	ActiveState *bool
	Logo        *string
}

func (u TenantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Alias == nil && u.ActiveState == nil && u.Logo == nil
}

// Columns converts the supplied fields to a column map for a partial update.
func (u TenantUpdate) Columns() map[string]any {
	cols := make(map[string]any)
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Alias != nil {
		cols["alias"] = *u.Alias
	}
	if u.ActiveState != nil {
		cols["active_state"] = *u.ActiveState
	}
	if u.Logo != nil {
		cols["logo"] = *u.Logo
	}
	return cols
}

type TenantQuery struct {
	TenantID string
	Name     string
	Alias    string
}

func (q TenantQuery) IsEmpty() bool {
	return q.TenantID == "" && q.Name == "" && q.Alias == ""
}
