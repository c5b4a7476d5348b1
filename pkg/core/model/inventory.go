package model

// StockLevel classifies how healthy a blood group's stock is
type StockLevel string

const (
	StockGood     StockLevel = "good"
	StockLow      StockLevel = "low"
	StockCritical StockLevel = "critical"
)

// StockStatus maps stock counters to a level by availability ratio.
// A zero total is treated as a ratio of 0, i.e. critical.
func StockStatus(available, total int) StockLevel {
	ratio := 0.0
	if total > 0 {
		ratio = float64(available) / float64(total)
	}
	switch {
	case ratio > 0.5:
		return StockGood
	case ratio > 0.2:
		return StockLow
	default:
		return StockCritical
	}
}

// Label returns the display label for a stock level
func (l StockLevel) Label() string {
	switch l {
	case StockGood:
		return "Good Stock"
	case StockLow:
		return "Low Stock"
	default:
		return "Critical"
	}
}
