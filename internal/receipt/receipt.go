package receipt

// Item is a single line item on a submitted receipt
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"` // Decimal string with exactly two fractional digits
}

// Receipt represents a submitted purchase receipt
type Receipt struct {
	Retailer     string `json:"retailer"`
	PurchaseDate string `json:"purchaseDate"` // YYYY-MM-DD
	PurchaseTime string `json:"purchaseTime"` // HH:MM, 24-hour clock
	Items        []Item `json:"items"`
	Total        string `json:"total"` // Decimal string with exactly two fractional digits
}

// Record is the server-side state kept for a processed receipt.
// Records are created once at process time and never modified.
type Record struct {
	ID      string  `json:"id"`
	Receipt Receipt `json:"receipt"`
	Points  int     `json:"points"`
}
