package supplier

import (
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
)

// parseValidity parses a validity window from its wire representation
func parseValidity(from string, to *string) (time.Time, *time.Time, error) {
	validFrom, err := time.Parse(dateLayout, from)
	if err != nil {
		return time.Time{}, nil, shared.NewDomainError("INVALID_DATE", "Valid-from date must be in YYYY-MM-DD format")
	}
	if to == nil {
		return validFrom, nil, nil
	}
	validTo, err := time.Parse(dateLayout, *to)
	if err != nil {
		return time.Time{}, nil, shared.NewDomainError("INVALID_DATE", "Valid-to date must be in YYYY-MM-DD format")
	}
	return validFrom, &validTo, nil
}
