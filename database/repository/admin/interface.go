// File: database/repository/admin/interface.go
package adminRepo

import (
	"context"

	"beautybar/models"
)

// AdminRepository defines data access for back-office accounts.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}
