package services

import "math"

const (
	scanSqftPerDay     = 10000.0
	scanDayRate        = 600.0
	hotelPerDiemRate   = 300.0
)

// ScanningEstimate is the derived internal scanning-labor cost. It is pure
// vendor cost: it never appears as a client-facing markup line.
type ScanningEstimate struct {
	ScanDays         int     `json:"scanDays"`
	ScanningCost     float64 `json:"scanningCost"`
	HotelPerDiemDays int     `json:"hotelPerDiemDays"`
	HotelPerDiemCost float64 `json:"hotelPerDiemCost"`
	TotalCost        float64 `json:"totalCost"`
}

// CalculateScanningEstimate estimates field labor from total project sqft.
// Every project incurs at least one scan day; this is baseline mobilization
// overhead even for zero-area quotes.
func CalculateScanningEstimate(projectTotalSqft float64) ScanningEstimate {
	scanDays := int(math.Ceil(projectTotalSqft / scanSqftPerDay))
	if scanDays < 1 {
		scanDays = 1
	}
	perDiemDays := scanDays - 1
	if perDiemDays < 0 {
		perDiemDays = 0
	}

	scanningCost := float64(scanDays) * scanDayRate
	perDiemCost := float64(perDiemDays) * hotelPerDiemRate

	return ScanningEstimate{
		ScanDays:         scanDays,
		ScanningCost:     scanningCost,
		HotelPerDiemDays: perDiemDays,
		HotelPerDiemCost: perDiemCost,
		TotalCost:        scanningCost + perDiemCost,
	}
}
