package receipt

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Afternoon bonus window, half-open: 14:00 counts, 16:00 does not.
const (
	afternoonStartHour = 14
	afternoonEndHour   = 16
)

var (
	quarter         = decimal.RequireFromString("0.25")
	priceMultiplier = decimal.RequireFromString("0.2")
)

// Points computes the loyalty points for a validated receipt by applying
// seven independent additive rules:
//
//  1. one point per alphanumeric character in the retailer name
//  2. 50 points if the total is a round dollar amount
//  3. 25 points if the total is a multiple of 0.25
//  4. 5 points for every two items on the receipt
//  5. for each item whose trimmed description length is a multiple of 3,
//     the price times 0.2, rounded up to the nearest integer
//  6. 6 points if the day of the purchase date is odd
//  7. 10 points if the purchase time falls in [14:00, 16:00)
//
// All monetary arithmetic uses exact decimals; binary floating point would
// break the modulo and rounding rules. A parse error here means a malformed
// value slipped past validation and is reported as an internal fault.
func Points(r Receipt) (int, error) {
	points := 0

	for _, c := range r.Retailer {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			points++
		}
	}

	total, err := decimal.NewFromString(r.Total)
	if err != nil {
		return 0, fmt.Errorf("parsing total %q: %w", r.Total, err)
	}
	if total.IsInteger() {
		points += 50
	}
	if total.Mod(quarter).IsZero() {
		points += 25
	}

	points += len(r.Items) / 2 * 5

	for i, item := range r.Items {
		trimmed := strings.TrimSpace(item.ShortDescription)
		if utf8.RuneCountInString(trimmed)%3 != 0 {
			continue
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return 0, fmt.Errorf("parsing items[%d].price %q: %w", i, item.Price, err)
		}
		points += int(price.Mul(priceMultiplier).Ceil().IntPart())
	}

	date, err := time.Parse("2006-01-02", r.PurchaseDate)
	if err != nil {
		return 0, fmt.Errorf("parsing purchaseDate %q: %w", r.PurchaseDate, err)
	}
	if date.Day()%2 == 1 {
		points += 6
	}

	purchaseTime, err := time.Parse("15:04", r.PurchaseTime)
	if err != nil {
		return 0, fmt.Errorf("parsing purchaseTime %q: %w", r.PurchaseTime, err)
	}
	if hour := purchaseTime.Hour(); hour >= afternoonStartHour && hour < afternoonEndHour {
		points += 10
	}

	return points, nil
}
