package constants

// Application roles as stored in the users table and carried in the JWT.
const (
	RoleCustomerService = "customer-service"
	RolePortfolioAdmin  = "admin-portofolio"
	RoleFinanceAdmin    = "admin-keuangan"
	// Koordinator is a read-only supervisory role.
	RoleKoordinator = "koordinator"
)

var AllRoles = []string{
	RoleCustomerService,
	RolePortfolioAdmin,
	RoleFinanceAdmin,
	RoleKoordinator,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
