package constants

// Business portfolios an order belongs to.
const (
	PortfolioBatubara = "batubara"
	PortfolioMineral  = "mineral"
	PortfolioAgri     = "agri"
	PortfolioIndustri = "industri"
)

var AllPortfolios = []string{
	PortfolioBatubara,
	PortfolioMineral,
	PortfolioAgri,
	PortfolioIndustri,
}

func IsValidPortfolio(p string) bool {
	for _, v := range AllPortfolios {
		if v == p {
			return true
		}
	}
	return false
}
