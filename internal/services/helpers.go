package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"dealer_manager/internal/models"

	"github.com/google/uuid"
)

// parseQuantity parses a stored quantity string into an integer.
// Quantities are persisted as text, so every consumer validates here.
func parseQuantity(quantity string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(quantity))
}

// parseDiscountRate normalizes a stored discount rate to a fraction.
// Values below 1 are already fractions (0.1 = 10%); values >= 1 are
// percents and get divided by 100.
func parseDiscountRate(rate string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("negative discount rate %q", rate)
	}
	if value >= 1 {
		value = value / 100
	}
	return value, nil
}

// applyPromotions applies each promotion cumulatively to the running
// total. Promotions with an unparsable rate are logged and skipped.
func applyPromotions(total float64, promotions []models.Promotion) float64 {
	for _, promo := range promotions {
		rate, err := parseDiscountRate(promo.DiscountRate)
		if err != nil {
			log.Printf("Skipping promotion %d: invalid discount rate %q", promo.ID, promo.DiscountRate)
			continue
		}
		total = total * (1 - rate)
	}
	return total
}

// newSerialNumber generates a vehicle serial business key.
func newSerialNumber() string {
	return "VS-" + strings.ToUpper(uuid.NewString())
}
