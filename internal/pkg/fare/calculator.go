package fare

import (
	"math"
	"sort"
	"time"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// Calculator prices trips against an injected rate card
type Calculator struct {
	rates *RateCard
}

// NewCalculator creates a fare calculator
func NewCalculator(rates *RateCard) *Calculator {
	if rates == nil {
		rates = DefaultRateCard()
	}
	return &Calculator{rates: rates}
}

// Rates exposes the active rate card
func (c *Calculator) Rates() *RateCard {
	return c.rates
}

// Input is everything needed to price a trip. Now is passed explicitly so
// booking-window validation stays deterministic under test.
type Input struct {
	TripType     models.TripType
	VehicleClass models.VehicleClass
	DistanceKm   float64
	StartTime    time.Time
	PackageCode  string
	ExtraKm      float64
	ExtraHours   float64
	Now          time.Time
}

// roundINR rounds a monetary sub-result to the nearest whole rupee. Every
// stage of the computation goes through this so rounded stages compose
// without float drift.
func roundINR(v float64) int {
	return int(math.Round(v))
}

// isNightStart reports whether the local clock hour of t falls in the night
// window [start, 24) U [0, end)
func (c *Calculator) isNightStart(t time.Time) bool {
	h := t.Hour()
	return h >= c.rates.NightStartHour || h < c.rates.NightEndHour
}

// Price computes the fare breakdown for a single trip type and vehicle class
func (c *Calculator) Price(in Input) (*models.FareBreakdown, error) {
	if err := c.validateCommon(in); err != nil {
		return nil, err
	}
	return c.price(in)
}

// price assumes common validation already ran; VehicleOptions uses it to
// avoid re-validating shared constraints per class.
func (c *Calculator) price(in Input) (*models.FareBreakdown, error) {
	switch in.TripType {
	case models.TripTypeOneWay, models.TripTypeRoundTrip:
		return c.priceOutstation(in)
	case models.TripTypeLocalPackage:
		return c.pricePackage(in)
	case models.TripTypeAirportPickup, models.TripTypeAirportDrop:
		return c.priceAirport(in)
	default:
		return nil, apperr.BadRequestf("unknown trip type %q", in.TripType)
	}
}

// validateCommon checks the constraints shared by every vehicle class:
// trip type, booking window, and distance bounds
func (c *Calculator) validateCommon(in Input) error {
	if !in.TripType.IsValid() {
		return apperr.BadRequestf("unknown trip type %q", in.TripType)
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	minStart := now.Add(time.Duration(c.rates.MinHoursAhead) * time.Hour)
	maxStart := now.AddDate(0, 0, c.rates.MaxAdvanceDays)
	if in.StartTime.Before(minStart) {
		return apperr.BadRequestf("start time must be at least %d hour(s) from now", c.rates.MinHoursAhead)
	}
	if in.StartTime.After(maxStart) {
		return apperr.BadRequestf("start time must be within %d days from now", c.rates.MaxAdvanceDays)
	}

	switch {
	case in.TripType.IsOutstation():
		if in.DistanceKm < c.rates.MinTripDistanceKm || in.DistanceKm > c.rates.MaxTripDistanceKm {
			return apperr.BadRequestf("distance must be between %.0f and %.0f km for outstation trips",
				c.rates.MinTripDistanceKm, c.rates.MaxTripDistanceKm)
		}
	case in.TripType.IsAirport():
		if in.DistanceKm <= 0 {
			return apperr.BadRequest("distance is required for airport transfers")
		}
		if in.DistanceKm > c.rates.AirportMaxKm {
			return apperr.BadRequestf("airport transfers are limited to %.0f km; book an outstation trip instead",
				c.rates.AirportMaxKm)
		}
	case in.TripType == models.TripTypeLocalPackage:
		if _, ok := c.rates.Packages[in.PackageCode]; !ok {
			return apperr.BadRequestf("unknown package %q", in.PackageCode)
		}
		if in.ExtraKm < 0 || in.ExtraHours < 0 {
			return apperr.BadRequest("package overage cannot be negative")
		}
	}

	return nil
}

func (c *Calculator) perKm(class models.VehicleClass) (float64, error) {
	rate, ok := c.rates.PerKmRate[class]
	if !ok {
		return 0, apperr.BadRequestf("no rate configured for vehicle class %q", class)
	}
	return rate, nil
}

func (c *Calculator) priceOutstation(in Input) (*models.FareBreakdown, error) {
	rate, err := c.perKm(in.VehicleClass)
	if err != nil {
		return nil, err
	}

	// The round-trip base is exactly twice the rounded one-way base, so
	// doubling survives the per-stage integer rounding.
	base := roundINR(in.DistanceKm * rate)
	if in.TripType == models.TripTypeRoundTrip {
		base *= 2
	}

	minFare := c.rates.MinFare[in.VehicleClass]
	if in.TripType == models.TripTypeRoundTrip {
		minFare = roundINR(float64(minFare) * c.rates.RoundTripMinFareFactor)
	}
	if base < minFare {
		base = minFare
	}

	fb := &models.FareBreakdown{
		TripType:     in.TripType,
		VehicleClass: in.VehicleClass,
		DistanceKm:   in.DistanceKm,
		BaseFare:     base,
		Currency:     c.rates.Currency,
	}

	if c.isNightStart(in.StartTime) {
		fb.NightApplied = true
		fb.NightCharge = roundINR(float64(base) * (c.rates.NightMultiplier - 1))
	}

	c.finalize(fb)
	return fb, nil
}

func (c *Calculator) pricePackage(in Input) (*models.FareBreakdown, error) {
	def := c.rates.Packages[in.PackageCode]

	price, ok := def.Price[in.VehicleClass]
	if !ok {
		return nil, apperr.BadRequestf("package %q is not available for vehicle class %q", def.Code, in.VehicleClass)
	}

	fb := &models.FareBreakdown{
		TripType:      models.TripTypeLocalPackage,
		VehicleClass:  in.VehicleClass,
		DistanceKm:    def.Km + in.ExtraKm,
		BaseFare:      price,
		PackageCode:   def.Code,
		IncludedKm:    def.Km,
		IncludedHours: def.Hours,
		Currency:      c.rates.Currency,
	}

	if in.ExtraKm > 0 {
		rate, err := c.perKm(in.VehicleClass)
		if err != nil {
			return nil, err
		}
		fb.ExtraKmCharge = roundINR(in.ExtraKm * rate)
	}
	if in.ExtraHours > 0 {
		hourRate, ok := def.ExtraHourRate[in.VehicleClass]
		if !ok {
			return nil, apperr.BadRequestf("package %q has no overage rate for vehicle class %q", def.Code, in.VehicleClass)
		}
		fb.ExtraHourCharge = roundINR(in.ExtraHours * float64(hourRate))
	}

	c.finalize(fb)
	return fb, nil
}

func (c *Calculator) priceAirport(in Input) (*models.FareBreakdown, error) {
	base, ok := c.rates.AirportBase[in.VehicleClass]
	if !ok {
		return nil, apperr.BadRequestf("airport transfers are not available for vehicle class %q", in.VehicleClass)
	}

	fb := &models.FareBreakdown{
		TripType:     in.TripType,
		VehicleClass: in.VehicleClass,
		DistanceKm:   in.DistanceKm,
		BaseFare:     base,
		IncludedKm:   c.rates.AirportFreeKm,
		Currency:     c.rates.Currency,
	}

	if extra := in.DistanceKm - c.rates.AirportFreeKm; extra > 0 {
		rate, err := c.perKm(in.VehicleClass)
		if err != nil {
			return nil, err
		}
		fb.ExtraKmCharge = roundINR(extra * rate)
	}

	// Night surcharge applies to the pre-tax subtotal, mirroring the
	// outstation rule.
	if c.isNightStart(in.StartTime) {
		fb.NightApplied = true
		fb.NightCharge = roundINR(float64(fb.BaseFare+fb.ExtraKmCharge) * (c.rates.NightMultiplier - 1))
	}

	c.finalize(fb)
	return fb, nil
}

// finalize computes GST and the final amount from the breakdown's subtotal
func (c *Calculator) finalize(fb *models.FareBreakdown) {
	subtotal := fb.Subtotal()
	fb.GST = roundINR(float64(subtotal) * c.rates.GSTRate)
	fb.FinalAmount = subtotal + fb.GST
}

// Reprice recomputes GST and the final amount after a discount was applied
// to an existing breakdown. Everything else in the breakdown is untouched.
func (c *Calculator) Reprice(fb *models.FareBreakdown) {
	c.finalize(fb)
}

// VehicleOptions prices the trip across every vehicle class, skipping classes
// the trip cannot be priced for, sorted ascending by final amount. Producing
// zero options is a BadRequest, never a silent empty list.
func (c *Calculator) VehicleOptions(in Input) ([]models.VehicleOption, error) {
	if err := c.validateCommon(in); err != nil {
		return nil, err
	}

	options := make([]models.VehicleOption, 0, len(models.VehicleClasses))
	for _, class := range models.VehicleClasses {
		classIn := in
		classIn.VehicleClass = class
		fb, err := c.price(classIn)
		if err != nil {
			// Class not supported for this trip (for example a traveller
			// on a package); shared constraints were already validated.
			continue
		}
		options = append(options, models.VehicleOption{
			Vehicle: VehicleInfo(class),
			Fare:    *fb,
		})
	}

	if len(options) == 0 {
		return nil, apperr.BadRequest("no vehicle options available for this trip")
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Fare.FinalAmount < options[j].Fare.FinalAmount
	})

	return options, nil
}
