// Package fare is the pure pricing engine: it converts a trip type, vehicle
// class, distance and start time into a priced fare breakdown. It performs no
// I/O; the rate card is loaded once at startup and injected.
package fare

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// PackageDef is a flat-rate local rental bundle of included hours and
// kilometers with per-unit overage charges
type PackageDef struct {
	Code          string                         `json:"code"`
	Hours         int                            `json:"hours"`
	Km            float64                        `json:"km"`
	Price         map[models.VehicleClass]int    `json:"price"`
	ExtraHourRate map[models.VehicleClass]int    `json:"extra_hour_rate"`
}

// RateCard holds every pricing table. It is immutable after load; tests
// inject alternate cards to keep pricing deterministic.
type RateCard struct {
	Currency string `json:"currency"`

	PerKmRate map[models.VehicleClass]float64 `json:"per_km_rate"`
	MinFare   map[models.VehicleClass]int     `json:"min_fare"`

	// RoundTripMinFareFactor scales the minimum fare for round trips.
	RoundTripMinFareFactor float64 `json:"round_trip_min_fare_factor"`

	NightMultiplier float64 `json:"night_multiplier"`
	NightStartHour  int     `json:"night_start_hour"`
	NightEndHour    int     `json:"night_end_hour"`

	GSTRate float64 `json:"gst_rate"`

	MinTripDistanceKm float64 `json:"min_trip_distance_km"`
	MaxTripDistanceKm float64 `json:"max_trip_distance_km"`

	AirportBase      map[models.VehicleClass]int `json:"airport_base"`
	AirportFreeKm    float64                     `json:"airport_free_km"`
	AirportMaxKm     float64                     `json:"airport_max_km"`

	Packages map[string]PackageDef `json:"packages"`

	MinHoursAhead  int `json:"min_hours_ahead"`
	MaxAdvanceDays int `json:"max_advance_days"`

	CancellationWindowHours   float64 `json:"cancellation_window_hours"`
	CancellationChargePercent float64 `json:"cancellation_charge_percent"`
}

// DefaultRateCard returns the compiled-in pricing tables
func DefaultRateCard() *RateCard {
	return &RateCard{
		Currency: "INR",
		PerKmRate: map[models.VehicleClass]float64{
			models.VehicleHatchback:   12,
			models.VehicleSedan:       15,
			models.VehicleSUV:         19,
			models.VehicleSUVPlus:     23,
			models.VehiclePremium:     35,
			models.VehicleTraveller12: 28,
			models.VehicleTraveller16: 32,
		},
		MinFare: map[models.VehicleClass]int{
			models.VehicleHatchback:   1500,
			models.VehicleSedan:       1800,
			models.VehicleSUV:         2300,
			models.VehicleSUVPlus:     2800,
			models.VehiclePremium:     4500,
			models.VehicleTraveller12: 3500,
			models.VehicleTraveller16: 4000,
		},
		RoundTripMinFareFactor: 1.5,
		NightMultiplier:        1.2,
		NightStartHour:         22,
		NightEndHour:           6,
		GSTRate:                0.05,
		MinTripDistanceKm:      25,
		MaxTripDistanceKm:      3000,
		AirportBase: map[models.VehicleClass]int{
			models.VehicleHatchback:   900,
			models.VehicleSedan:       1100,
			models.VehicleSUV:         1600,
			models.VehicleSUVPlus:     2000,
			models.VehiclePremium:     3200,
			models.VehicleTraveller12: 2600,
			models.VehicleTraveller16: 3000,
		},
		AirportFreeKm: 40,
		AirportMaxKm:  200,
		Packages: map[string]PackageDef{
			"4hr_40km": {
				Code:  "4hr_40km",
				Hours: 4,
				Km:    40,
				Price: map[models.VehicleClass]int{
					models.VehicleHatchback: 1400,
					models.VehicleSedan:     1700,
					models.VehicleSUV:       2400,
					models.VehicleSUVPlus:   2900,
					models.VehiclePremium:   5000,
				},
				ExtraHourRate: map[models.VehicleClass]int{
					models.VehicleHatchback: 120,
					models.VehicleSedan:     150,
					models.VehicleSUV:       190,
					models.VehicleSUVPlus:   230,
					models.VehiclePremium:   350,
				},
			},
			"8hr_80km": {
				Code:  "8hr_80km",
				Hours: 8,
				Km:    80,
				Price: map[models.VehicleClass]int{
					models.VehicleHatchback: 2400,
					models.VehicleSedan:     2800,
					models.VehicleSUV:       3900,
					models.VehicleSUVPlus:   4600,
					models.VehiclePremium:   8000,
				},
				ExtraHourRate: map[models.VehicleClass]int{
					models.VehicleHatchback: 120,
					models.VehicleSedan:     150,
					models.VehicleSUV:       190,
					models.VehicleSUVPlus:   230,
					models.VehiclePremium:   350,
				},
			},
			"12hr_120km": {
				Code:  "12hr_120km",
				Hours: 12,
				Km:    120,
				Price: map[models.VehicleClass]int{
					models.VehicleHatchback: 3300,
					models.VehicleSedan:     3900,
					models.VehicleSUV:       5400,
					models.VehicleSUVPlus:   6300,
					models.VehiclePremium:   11000,
				},
				ExtraHourRate: map[models.VehicleClass]int{
					models.VehicleHatchback: 120,
					models.VehicleSedan:     150,
					models.VehicleSUV:       190,
					models.VehicleSUVPlus:   230,
					models.VehiclePremium:   350,
				},
			},
		},
		MinHoursAhead:             1,
		MaxAdvanceDays:            90,
		CancellationWindowHours:   24,
		CancellationChargePercent: 0.20,
	}
}

// LoadRateCard reads a rate card override from a JSON file. An empty path
// returns the defaults.
func LoadRateCard(path string) (*RateCard, error) {
	if path == "" {
		return DefaultRateCard(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate card file: %w", err)
	}

	card := DefaultRateCard()
	if err := json.Unmarshal(data, card); err != nil {
		return nil, fmt.Errorf("failed to parse rate card file: %w", err)
	}

	return card, nil
}
