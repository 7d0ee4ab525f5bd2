package fare

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// fixedNow keeps booking-window validation deterministic
var fixedNow = time.Date(2025, 5, 10, 9, 0, 0, 0, ist)

// daytimeStart is comfortably inside the booking window and outside the
// night window
var daytimeStart = time.Date(2025, 5, 12, 11, 0, 0, 0, ist)

func newTestCalculator() *Calculator {
	return NewCalculator(DefaultRateCard())
}

func TestPriceOneWaySedanWorkedExample(t *testing.T) {
	c := newTestCalculator()

	fb, err := c.Price(Input{
		TripType:     models.TripTypeOneWay,
		VehicleClass: models.VehicleSedan,
		DistanceKm:   230,
		StartTime:    daytimeStart,
		Now:          fixedNow,
	})
	require.NoError(t, err)

	assert.Equal(t, 3450, fb.BaseFare)
	assert.False(t, fb.NightApplied)
	assert.Equal(t, 0, fb.NightCharge)
	assert.Equal(t, 173, fb.GST)
	assert.Equal(t, 3623, fb.FinalAmount)
	assert.Equal(t, "INR", fb.Currency)
}

func TestPriceRoundTripDoublesSubtotal(t *testing.T) {
	c := newTestCalculator()

	distances := []float64{150, 230, 333.3, 412, 987.5}
	for _, d := range distances {
		oneWay, err := c.Price(Input{
			TripType:     models.TripTypeOneWay,
			VehicleClass: models.VehicleSUV,
			DistanceKm:   d,
			StartTime:    daytimeStart,
			Now:          fixedNow,
		})
		require.NoError(t, err)

		roundTrip, err := c.Price(Input{
			TripType:     models.TripTypeRoundTrip,
			VehicleClass: models.VehicleSUV,
			DistanceKm:   d,
			StartTime:    daytimeStart,
			Now:          fixedNow,
		})
		require.NoError(t, err)

		// Distances large enough that the minimum-fare floor never engages.
		assert.Equal(t, 2*oneWay.Subtotal(), roundTrip.Subtotal(), "distance %.1f", d)
	}
}

func TestPriceMinimumFareFloor(t *testing.T) {
	c := newTestCalculator()

	// 30 km x 15/km = 450, well under the sedan minimum of 1800.
	fb, err := c.Price(Input{
		TripType:     models.TripTypeOneWay,
		VehicleClass: models.VehicleSedan,
		DistanceKm:   30,
		StartTime:    daytimeStart,
		Now:          fixedNow,
	})
	require.NoError(t, err)
	assert.Equal(t, 1800, fb.BaseFare)

	// Round trip floors at 1.5x the class minimum.
	fb, err = c.Price(Input{
		TripType:     models.TripTypeRoundTrip,
		VehicleClass: models.VehicleSedan,
		DistanceKm:   30,
		StartTime:    daytimeStart,
		Now:          fixedNow,
	})
	require.NoError(t, err)
	assert.Equal(t, 2700, fb.BaseFare)
}

func TestNightSurchargeBoundaries(t *testing.T) {
	c := newTestCalculator()

	cases := []struct {
		hour, minute int
		night        bool
	}{
		{21, 59, false},
		{22, 0, true},
		{5, 59, true},
		{6, 0, false},
		{23, 30, true},
		{12, 0, false},
	}

	for _, tc := range cases {
		start := time.Date(2025, 5, 12, tc.hour, tc.minute, 0, 0, ist)
		fb, err := c.Price(Input{
			TripType:     models.TripTypeOneWay,
			VehicleClass: models.VehicleSedan,
			DistanceKm:   230,
			StartTime:    start,
			Now:          fixedNow,
		})
		require.NoError(t, err)

		assert.Equal(t, tc.night, fb.NightApplied, "start %02d:%02d", tc.hour, tc.minute)
		if tc.night {
			// base 3450 x (1.2 - 1) = 690
			assert.Equal(t, 690, fb.NightCharge)
			assert.Equal(t, 3450+690, fb.Subtotal())
		} else {
			assert.Equal(t, 0, fb.NightCharge)
		}
	}
}

func TestGSTAndFinalAmountExact(t *testing.T) {
	c := newTestCalculator()

	for _, d := range []float64{137, 230, 333.3, 541} {
		fb, err := c.Price(Input{
			TripType:     models.TripTypeOneWay,
			VehicleClass: models.VehicleSUVPlus,
			DistanceKm:   d,
			StartTime:    daytimeStart,
			Now:          fixedNow,
		})
		require.NoError(t, err)

		subtotal := fb.Subtotal()
		expectedGST := roundINR(float64(subtotal) * 0.05)
		assert.Equal(t, expectedGST, fb.GST, "distance %.1f", d)
		assert.Equal(t, subtotal+expectedGST, fb.FinalAmount, "distance %.1f", d)
	}
}

func TestPricePackageSUVNoOverage(t *testing.T) {
	c := newTestCalculator()

	fb, err := c.Price(Input{
		TripType:     models.TripTypeLocalPackage,
		VehicleClass: models.VehicleSUV,
		PackageCode:  "8hr_80km",
		StartTime:    daytimeStart,
		Now:          fixedNow,
	})
	require.NoError(t, err)

	assert.Equal(t, 3900, fb.BaseFare)
	assert.Equal(t, float64(80), fb.IncludedKm)
	assert.Equal(t, 8, fb.IncludedHours)
	assert.Equal(t, 0, fb.ExtraKmCharge)
	assert.Equal(t, 0, fb.ExtraHourCharge)
	assert.Equal(t, 195, fb.GST)
	assert.Equal(t, 4095, fb.FinalAmount)
}

func TestPricePackageOverage(t *testing.T) {
	c := newTestCalculator()

	fb, err := c.Price(Input{
		TripType:     models.TripTypeLocalPackage,
		VehicleClass: models.VehicleSedan,
		PackageCode:  "8hr_80km",
		ExtraKm:      20,
		ExtraHours:   2,
		StartTime:    daytimeStart,
		Now:          fixedNow,
	})
	require.NoError(t, err)

	assert.Equal(t, 2800, fb.BaseFare)
	assert.Equal(t, 300, fb.ExtraKmCharge)   // 20 km x 15
	assert.Equal(t, 300, fb.ExtraHourCharge) // 2 h x 150
	assert.Equal(t, 3400, fb.Subtotal())
	assert.Equal(t, 170, fb.GST)
	assert.Equal(t, 3570, fb.FinalAmount)
}

func TestPricePackageUnsupportedClass(t *testing.T) {
	c := newTestCalculator()

	_, err := c.Price(Input{
		TripType:     models.TripTypeLocalPackage,
		VehicleClass: models.VehicleTraveller12,
		PackageCode:  "8hr_80km",
		StartTime:    daytimeStart,
		Now:          fixedNow,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.CodeOf(err))
}

func TestPriceAirportWithinAllowance(t *testing.T) {
	c := newTestCalculator()

	fb, err := c.Price(Input{
		TripType:     models.TripTypeAirportPickup,
		VehicleClass: models.VehicleSedan,
		DistanceKm:   32,
		StartTime:    daytimeStart,
		Now:          fixedNow,
	})
	require.NoError(t, err)

	assert.Equal(t, 1100, fb.BaseFare)
	assert.Equal(t, 0, fb.ExtraKmCharge)
	assert.Equal(t, 55, fb.GST)
	assert.Equal(t, 1155, fb.FinalAmount)
}

func TestPriceAirportBeyondAllowance(t *testing.T) {
	c := newTestCalculator()

	fb, err := c.Price(Input{
		TripType:     models.TripTypeAirportDrop,
		VehicleClass: models.VehicleSedan,
		DistanceKm:   60,
		StartTime:    daytimeStart,
		Now:          fixedNow,
	})
	require.NoError(t, err)

	assert.Equal(t, 1100, fb.BaseFare)
	assert.Equal(t, 300, fb.ExtraKmCharge) // (60-40) km x 15
	assert.Equal(t, 1400, fb.Subtotal())
	assert.Equal(t, 70, fb.GST)
	assert.Equal(t, 1470, fb.FinalAmount)
}

func TestPriceAirportNightSurcharge(t *testing.T) {
	c := newTestCalculator()

	start := time.Date(2025, 5, 12, 23, 0, 0, 0, ist)
	fb, err := c.Price(Input{
		TripType:     models.TripTypeAirportPickup,
		VehicleClass: models.VehicleSedan,
		DistanceKm:   60,
		StartTime:    start,
		Now:          fixedNow,
	})
	require.NoError(t, err)

	assert.True(t, fb.NightApplied)
	assert.Equal(t, 280, fb.NightCharge) // (1100+300) x 0.2
}

func TestPriceAirportDistanceCap(t *testing.T) {
	c := newTestCalculator()

	_, err := c.Price(Input{
		TripType:     models.TripTypeAirportPickup,
		VehicleClass: models.VehicleSedan,
		DistanceKm:   250,
		StartTime:    daytimeStart,
		Now:          fixedNow,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.CodeOf(err))
	assert.Contains(t, err.Error(), "outstation")
}

func TestPriceOutstationDistanceBounds(t *testing.T) {
	c := newTestCalculator()

	for _, d := range []float64{10, 3500} {
		_, err := c.Price(Input{
			TripType:     models.TripTypeOneWay,
			VehicleClass: models.VehicleSedan,
			DistanceKm:   d,
			StartTime:    daytimeStart,
			Now:          fixedNow,
		})
		require.Error(t, err, "distance %.0f", d)
		assert.Equal(t, http.StatusBadRequest, apperr.CodeOf(err))
	}
}

func TestPriceBookingWindow(t *testing.T) {
	c := newTestCalculator()

	tooSoon := fixedNow.Add(30 * time.Minute)
	tooFar := fixedNow.AddDate(0, 0, 120)

	for _, start := range []time.Time{tooSoon, tooFar} {
		_, err := c.Price(Input{
			TripType:     models.TripTypeOneWay,
			VehicleClass: models.VehicleSedan,
			DistanceKm:   230,
			StartTime:    start,
			Now:          fixedNow,
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.CodeOf(err))
	}
}

func TestVehicleOptionsSortedAscending(t *testing.T) {
	c := newTestCalculator()

	options, err := c.VehicleOptions(Input{
		TripType:   models.TripTypeOneWay,
		DistanceKm: 230,
		StartTime:  daytimeStart,
		Now:        fixedNow,
	})
	require.NoError(t, err)
	require.Len(t, options, len(models.VehicleClasses))

	for i := 1; i < len(options); i++ {
		assert.LessOrEqual(t, options[i-1].Fare.FinalAmount, options[i].Fare.FinalAmount)
	}
}

func TestVehicleOptionsSkipsUnsupportedClasses(t *testing.T) {
	c := newTestCalculator()

	options, err := c.VehicleOptions(Input{
		TripType:    models.TripTypeLocalPackage,
		PackageCode: "8hr_80km",
		StartTime:   daytimeStart,
		Now:         fixedNow,
	})
	require.NoError(t, err)

	// Travellers carry no package price and are silently skipped.
	assert.Len(t, options, 5)
	for _, opt := range options {
		assert.NotEqual(t, models.VehicleTraveller12, opt.Vehicle.Class)
		assert.NotEqual(t, models.VehicleTraveller16, opt.Vehicle.Class)
	}
}

func TestVehicleOptionsUnknownPackage(t *testing.T) {
	c := newTestCalculator()

	_, err := c.VehicleOptions(Input{
		TripType:    models.TripTypeLocalPackage,
		PackageCode: "48hr_1000km",
		StartTime:   daytimeStart,
		Now:         fixedNow,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.CodeOf(err))
}

func TestRepriceAfterDiscount(t *testing.T) {
	c := newTestCalculator()

	fb, err := c.Price(Input{
		TripType:     models.TripTypeOneWay,
		VehicleClass: models.VehicleSedan,
		DistanceKm:   230,
		StartTime:    daytimeStart,
		Now:          fixedNow,
	})
	require.NoError(t, err)

	fb.DiscountCode = "WELCOME200"
	fb.DiscountAmount = 200
	c.Reprice(fb)

	assert.Equal(t, 3250, fb.Subtotal())
	assert.Equal(t, 163, fb.GST) // round(3250 x 0.05)
	assert.Equal(t, 3413, fb.FinalAmount)
}
