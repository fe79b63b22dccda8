package models

// Role is static reference data. Lookup tables use small sequential ids,
// not UUIDs.
type Role struct {
	ID          uint     `gorm:"primaryKey"`
	Name        RoleName `gorm:"type:varchar(20);uniqueIndex;not null"`
	Description string

	Permissions []Permission `gorm:"many2many:role_permissions;constraint:OnDelete:CASCADE"`
}

// Permission is a named capability attached to roles.
type Permission struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Description string
}

// HasPermission reports whether the role's preloaded permissions contain name.
func (r *Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p.Name == name {
			return true
		}
	}
	return false
}
