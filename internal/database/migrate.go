package database

import (
	"fmt"

	"gemmarket_backend/internal/models"

	"gorm.io/gorm"
)

// migrationModels lists every model in forward dependency order: parents
// before children so foreign keys resolve during creation.
var migrationModels = []interface{}{
	&models.User{},
	&models.RefreshToken{},
	&models.Role{},
	&models.Permission{},
	&models.Professional{},
	&models.ProfessionalType{},
	&models.VerificationDocument{},
}

// dropOrder lists every table in strict reverse dependency order. Down
// must drop children before parents or foreign keys block the drop.
var dropOrder = []string{
	"verification_documents",
	"professional_professional_types",
	"professional_types",
	"professionals",
	"role_permissions",
	"user_roles",
	"permissions",
	"roles",
	"refresh_tokens",
	"users",
}

// Up creates all tables, constraints and join tables, then seeds the
// static reference data. Constraint violations bubble up unchanged.
func Up(db *gorm.DB) error {
	if err := db.AutoMigrate(migrationModels...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := seedReferenceData(db); err != nil {
		return fmt.Errorf("reference data seed failed: %w", err)
	}
	return nil
}

// Down drops every table defined by Up, children first. It assumes a
// database in the post-Up state; a partial schema surfaces as a
// structured error rather than being ignored.
func Down(db *gorm.DB) error {
	for _, table := range dropOrder {
		if err := db.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("drop %s failed: %w", table, err)
		}
	}
	return nil
}

// DropOrder exposes the reverse-dependency table order.
func DropOrder() []string {
	out := make([]string, len(dropOrder))
	copy(out, dropOrder)
	return out
}

// seedReferenceData inserts the static role, permission and professional
// type rows. Inserts are idempotent on the unique name columns.
func seedReferenceData(db *gorm.DB) error {
	for _, name := range models.AllRoleNames {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}

	for _, name := range models.AllProfessionalTypeNames {
		pt := models.ProfessionalType{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&pt).Error; err != nil {
			return err
		}
	}

	return seedPermissions(db)
}

// rolePermissions maps each role to its capabilities.
var rolePermissions = map[models.RoleName][]string{
	models.RoleCustomer: {
		"marketplace:read",
		"professionals:read",
	},
	models.RoleDealer: {
		"marketplace:read",
		"marketplace:write",
		"professionals:read",
		"professionals:write:self",
	},
	models.RoleCutter: {
		"marketplace:read",
		"professionals:read",
		"professionals:write:self",
	},
	models.RoleAppraiser: {
		"marketplace:read",
		"professionals:read",
		"professionals:write:self",
		"documents:review",
	},
	models.RoleAdmin: {
		"marketplace:read",
		"marketplace:write",
		"professionals:read",
		"professionals:write",
		"documents:review",
		"users:write",
		"system:admin",
	},
}

func seedPermissions(db *gorm.DB) error {
	created := map[string]models.Permission{}

	for roleName, permNames := range rolePermissions {
		var role models.Role
		if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
			return err
		}

		perms := make([]models.Permission, 0, len(permNames))
		for _, name := range permNames {
			perm, ok := created[name]
			if !ok {
				perm = models.Permission{Name: name}
				if err := db.Where("name = ?", name).FirstOrCreate(&perm).Error; err != nil {
					return err
				}
				created[name] = perm
			}
			perms = append(perms, perm)
		}

		if err := db.Model(&role).Association("Permissions").Replace(perms); err != nil {
			return err
		}
	}
	return nil
}

// RolePermissionNames returns the seeded permission names for a role.
func RolePermissionNames(role models.RoleName) []string {
	names := rolePermissions[role]
	out := make([]string, len(names))
	copy(out, names)
	return out
}
