package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapittriandi/simdor-service/pkg/constants"
	"github.com/dapittriandi/simdor-service/pkg/utils"
)

type seedUser struct {
	Name      string
	Email     string
	Password  string
	Role      string
	Portfolio string
}

var defaultUsers = []seedUser{
	{Name: "Customer Service", Email: "cs@simdor.local", Password: "cs12345", Role: constants.RoleCustomerService},
	{Name: "Admin Batubara", Email: "admin.batubara@simdor.local", Password: "admin12345", Role: constants.RolePortfolioAdmin, Portfolio: constants.PortfolioBatubara},
	{Name: "Admin Mineral", Email: "admin.mineral@simdor.local", Password: "admin12345", Role: constants.RolePortfolioAdmin, Portfolio: constants.PortfolioMineral},
	{Name: "Admin Agri", Email: "admin.agri@simdor.local", Password: "admin12345", Role: constants.RolePortfolioAdmin, Portfolio: constants.PortfolioAgri},
	{Name: "Admin Industri", Email: "admin.industri@simdor.local", Password: "admin12345", Role: constants.RolePortfolioAdmin, Portfolio: constants.PortfolioIndustri},
	{Name: "Admin Keuangan", Email: "keuangan@simdor.local", Password: "keu12345", Role: constants.RoleFinanceAdmin},
	{Name: "Koordinator", Email: "koordinator@simdor.local", Password: "koor12345", Role: constants.RoleKoordinator},
}

// SeedUsers creates one account per role plus one portfolio admin per
// portfolio. Existing emails are skipped, so reruns are safe.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding users...")

	for _, u := range defaultUsers {
		if err := insertSeedUser(ctx, db, u); err != nil {
			log.Fatalf("failed to seed user %s: %v", u.Email, err)
		}
	}
	log.Println("user seeding done")
}

func insertSeedUser(ctx context.Context, db *pgxpool.Pool, u seedUser) error {
	var existingID string
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", u.Email).Scan(&existingID)
	if err == nil {
		log.Printf("  - %s already exists, skipping", u.Email)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = db.Exec(ctx,
		`INSERT INTO users (id, name, email, password, role, portfolio, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New().String(), u.Name, u.Email, hashed, u.Role, u.Portfolio, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	log.Printf("  - created %s (%s)", u.Email, u.Role)
	return nil
}
