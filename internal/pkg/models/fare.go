package models

// FareBreakdown is the server-computed price of a trip. It is embedded in the
// booking and immutable once saved, except for the explicit discount
// operation which recomputes GST and the final amount in place.
type FareBreakdown struct {
	TripType     TripType     `json:"trip_type" db:"trip_type"`
	VehicleClass VehicleClass `json:"vehicle_class" db:"vehicle_class"`
	DistanceKm   float64      `json:"distance_km" db:"distance_km"`

	// BaseFare is the floored distance fare for outstation trips, the
	// package price for local packages, or the allowance-inclusive base for
	// airport transfers.
	BaseFare int `json:"base_fare" db:"base_fare"`

	NightApplied bool `json:"night_applied" db:"night_applied"`
	NightCharge  int  `json:"night_charge" db:"night_charge"`

	// Package fields, populated only for local packages.
	PackageCode     string  `json:"package_code,omitempty" db:"fare_package_code"`
	IncludedKm      float64 `json:"included_km,omitempty" db:"included_km"`
	IncludedHours   int     `json:"included_hours,omitempty" db:"included_hours"`
	ExtraKmCharge   int     `json:"extra_km_charge,omitempty" db:"extra_km_charge"`
	ExtraHourCharge int     `json:"extra_hour_charge,omitempty" db:"extra_hour_charge"`

	DiscountCode   string `json:"discount_code,omitempty" db:"discount_code"`
	DiscountAmount int    `json:"discount_amount,omitempty" db:"discount_amount"`

	GST         int    `json:"gst" db:"gst"`
	FinalAmount int    `json:"final_amount" db:"final_amount"`
	Currency    string `json:"currency" db:"currency"`
}

// Subtotal returns the pre-tax amount the GST was computed on
func (f *FareBreakdown) Subtotal() int {
	return f.BaseFare + f.NightCharge + f.ExtraKmCharge + f.ExtraHourCharge - f.DiscountAmount
}

// DistanceResult is what the external geocoding/distance-matrix collaborator
// returns for a route
type DistanceResult struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
}

// VehicleInfo is catalog metadata used to decorate fare options
type VehicleInfo struct {
	Class       VehicleClass `json:"class"`
	DisplayName string       `json:"display_name"`
	Seats       int          `json:"seats"`
	Luggage     int          `json:"luggage"`
	Examples    []string     `json:"examples,omitempty"`
}

// VehicleOption is one priced vehicle class returned by search
type VehicleOption struct {
	Vehicle VehicleInfo   `json:"vehicle"`
	Fare    FareBreakdown `json:"fare"`
}
