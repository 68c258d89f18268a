package receipt

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	retailerPattern    = regexp.MustCompile(`^[\w\s\-&]+$`)
	descriptionPattern = regexp.MustCompile(`^[\w\s\-]+$`)
	pricePattern       = regexp.MustCompile(`^\d+\.\d{2}$`)
)

// ValidationError reports every constraint a submitted receipt violated.
// It is a client fault, not a server fault.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid receipt: %s", strings.Join(e.Violations, "; "))
}

// Validate checks a submitted receipt against the structural and semantic
// constraints of the API. It accumulates all violations rather than stopping
// at the first, so clients see every offending field at once. A nil return
// means the receipt is safe to score.
func Validate(r Receipt) error {
	var violations []string

	if r.Retailer == "" {
		violations = append(violations, "retailer must not be empty")
	} else if !retailerPattern.MatchString(r.Retailer) {
		violations = append(violations, fmt.Sprintf("retailer %q contains characters outside letters, digits, whitespace, hyphen and ampersand", r.Retailer))
	}

	if _, err := time.Parse("2006-01-02", r.PurchaseDate); err != nil {
		violations = append(violations, fmt.Sprintf("purchaseDate %q is not a valid YYYY-MM-DD date", r.PurchaseDate))
	}

	if _, err := time.Parse("15:04", r.PurchaseTime); err != nil {
		violations = append(violations, fmt.Sprintf("purchaseTime %q is not a valid HH:MM 24-hour time", r.PurchaseTime))
	}

	// The cross-field check against total only makes sense once every price
	// parsed cleanly, so track whether any item failed its own format check.
	itemsSum := decimal.Zero
	pricesOK := true

	if len(r.Items) == 0 {
		violations = append(violations, "at least one item is required")
		pricesOK = false
	}

	for i, item := range r.Items {
		if item.ShortDescription == "" {
			violations = append(violations, fmt.Sprintf("items[%d].shortDescription must not be empty", i))
		} else if !descriptionPattern.MatchString(item.ShortDescription) {
			violations = append(violations, fmt.Sprintf("items[%d].shortDescription %q contains characters outside letters, digits, whitespace and hyphen", i, item.ShortDescription))
		}

		if !pricePattern.MatchString(item.Price) {
			violations = append(violations, fmt.Sprintf("items[%d].price %q must be a decimal amount with exactly two fractional digits", i, item.Price))
			pricesOK = false
			continue
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			violations = append(violations, fmt.Sprintf("items[%d].price %q is not a valid decimal amount", i, item.Price))
			pricesOK = false
			continue
		}
		itemsSum = itemsSum.Add(price)
	}

	if !pricePattern.MatchString(r.Total) {
		violations = append(violations, fmt.Sprintf("total %q must be a decimal amount with exactly two fractional digits", r.Total))
	} else if total, err := decimal.NewFromString(r.Total); err != nil {
		violations = append(violations, fmt.Sprintf("total %q is not a valid decimal amount", r.Total))
	} else if pricesOK && !itemsSum.Equal(total) {
		violations = append(violations, fmt.Sprintf("total %s does not equal the sum of item prices %s", total.StringFixed(2), itemsSum.StringFixed(2)))
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
