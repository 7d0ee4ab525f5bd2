package models

import (
	"time"

	"github.com/google/uuid"
)

// TripType determines which fare algorithm applies to a booking
type TripType string

const (
	TripTypeOneWay        TripType = "one_way"
	TripTypeRoundTrip     TripType = "round_trip"
	TripTypeLocalPackage  TripType = "local_package"
	TripTypeAirportPickup TripType = "airport_pickup"
	TripTypeAirportDrop   TripType = "airport_drop"
)

// TripTypes lists every supported trip type
var TripTypes = []TripType{
	TripTypeOneWay,
	TripTypeRoundTrip,
	TripTypeLocalPackage,
	TripTypeAirportPickup,
	TripTypeAirportDrop,
}

// IsValid reports whether t is a known trip type
func (t TripType) IsValid() bool {
	switch t {
	case TripTypeOneWay, TripTypeRoundTrip, TripTypeLocalPackage, TripTypeAirportPickup, TripTypeAirportDrop:
		return true
	}
	return false
}

// IsOutstation reports whether the trip is priced by the outstation algorithm
func (t TripType) IsOutstation() bool {
	return t == TripTypeOneWay || t == TripTypeRoundTrip
}

// IsAirport reports whether the trip is an airport transfer
func (t TripType) IsAirport() bool {
	return t == TripTypeAirportPickup || t == TripTypeAirportDrop
}

// VehicleClass represents the class of vehicle requested for a booking
type VehicleClass string

const (
	VehicleHatchback   VehicleClass = "hatchback"
	VehicleSedan       VehicleClass = "sedan"
	VehicleSUV         VehicleClass = "suv"
	VehicleSUVPlus     VehicleClass = "suv_plus"
	VehiclePremium     VehicleClass = "premium"
	VehicleTraveller12 VehicleClass = "traveller_12"
	VehicleTraveller16 VehicleClass = "traveller_16"
)

// VehicleClasses lists every supported class in catalog order
var VehicleClasses = []VehicleClass{
	VehicleHatchback,
	VehicleSedan,
	VehicleSUV,
	VehicleSUVPlus,
	VehiclePremium,
	VehicleTraveller12,
	VehicleTraveller16,
}

// IsValid reports whether v is a known vehicle class
func (v VehicleClass) IsValid() bool {
	for _, c := range VehicleClasses {
		if c == v {
			return true
		}
	}
	return false
}

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusAssigned   BookingStatus = "assigned"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusRejected   BookingStatus = "rejected"
)

// bookingTransitions encodes the lifecycle graph. A status missing from the
// map is terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusRejected},
	BookingStatusConfirmed:  {BookingStatusAssigned, BookingStatusCancelled},
	BookingStatusAssigned:   {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
}

// IsValid reports whether s is a known booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusAssigned,
		BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether s admits no further transitions
func (s BookingStatus) IsTerminal() bool {
	_, ok := bookingTransitions[s]
	return !ok && s.IsValid()
}

// CanTransitionTo reports whether the lifecycle graph permits s -> next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsCancellable reports whether the dedicated cancel operation accepts a
// booking in this state. Pending bookings are cancellable at zero charge even
// though the generic status graph routes pending only to confirmed/rejected.
func (s BookingStatus) IsCancellable() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusAssigned:
		return true
	}
	return false
}

// Role identifies the kind of authenticated caller
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// Actor is the authenticated identity attached to a request by the JWT
// middleware
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
	Name   string    `json:"name,omitempty"`
	Phone  string    `json:"phone,omitempty"`
	Email  string    `json:"email,omitempty"`
}

// IsElevated reports whether the actor may perform driver/admin transitions
func (a Actor) IsElevated() bool {
	return a.Role == RoleDriver || a.Role == RoleAdmin
}

// Location represents a pickup, drop or via stop
type Location struct {
	City      string   `json:"city"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are present
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Passenger holds the contact details the driver sees for a trip
type Passenger struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// Cancellation records who cancelled a booking and the charge applied.
// Write-once: a booking carries at most one cancellation record.
type Cancellation struct {
	CancelledBy Role      `json:"cancelled_by" db:"cancelled_by"`
	Reason      string    `json:"reason" db:"cancellation_reason"`
	Charge      int       `json:"charge" db:"cancellation_charge"`
	CancelledAt time.Time `json:"cancelled_at" db:"cancelled_at"`
}

// Rating is the customer's post-trip rating, settable exactly once on a
// completed booking
type Rating struct {
	Value   int       `json:"value" db:"rating_value"`
	Comment string    `json:"comment,omitempty" db:"rating_comment"`
	RatedAt time.Time `json:"rated_at" db:"rated_at"`
}

// TripRecord holds the actual trip timestamps stamped by lifecycle
// transitions
type TripRecord struct {
	ActualStart *time.Time `json:"actual_start,omitempty" db:"actual_start"`
	ActualEnd   *time.Time `json:"actual_end,omitempty" db:"actual_end"`
}

// Booking represents one trip request
type Booking struct {
	ID           uuid.UUID     `json:"id" db:"id"`
	Code         string        `json:"code" db:"code"`
	UserID       uuid.UUID     `json:"user_id" db:"user_id"`
	DriverID     *uuid.UUID    `json:"driver_id,omitempty" db:"driver_id"`
	TripType     TripType      `json:"trip_type" db:"trip_type"`
	VehicleClass VehicleClass  `json:"vehicle_class" db:"vehicle_class"`
	PackageCode  string        `json:"package_code,omitempty" db:"package_code"`
	Pickup       Location      `json:"pickup"`
	Drop         Location      `json:"drop"`
	Via          []Location    `json:"via,omitempty"`
	StartTime    time.Time     `json:"start_time" db:"start_time"`
	EndTime      *time.Time    `json:"end_time,omitempty" db:"end_time"`
	Passenger    Passenger     `json:"passenger"`
	Fare         FareBreakdown `json:"fare"`
	Status       BookingStatus `json:"status" db:"status"`
	PaymentID    uuid.UUID     `json:"payment_id" db:"payment_id"`
	Cancellation *Cancellation `json:"cancellation,omitempty"`
	Rating       *Rating       `json:"rating,omitempty"`
	Trip         TripRecord    `json:"trip"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

// Driver represents a driver record; completed ride count is incremented by
// the completion transition
type Driver struct {
	ID             uuid.UUID    `json:"id" db:"id"`
	Name           string       `json:"name" db:"name"`
	Phone          string       `json:"phone" db:"phone"`
	VehicleClass   VehicleClass `json:"vehicle_class" db:"vehicle_class"`
	CompletedRides int          `json:"completed_rides" db:"completed_rides"`
	Active         bool         `json:"active" db:"active"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
}
