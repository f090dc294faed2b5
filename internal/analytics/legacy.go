package analytics

import (
	"strings"

	"github.com/lenteradev69/barbershits/internal/domain"
)

// LegacyCategoryForName classifies old cart lines that predate the
// category snapshot by matching on the item name. New records carry
// their category and never hit this path.
func LegacyCategoryForName(name string, itemType domain.ItemType) string {
	if itemType == domain.ItemTypeProduct {
		return "Products"
	}
	switch {
	case strings.Contains(name, "Haircut"):
		return "Haircuts"
	case strings.Contains(name, "Beard"):
		return "Beard Services"
	case strings.Contains(name, "Color"), strings.Contains(name, "Treatment"):
		return "Hair Treatments"
	case strings.Contains(name, "Shave"):
		return "Shaving"
	default:
		return "Other"
	}
}
