// Package booking contains the facility-booking records exchanged with the backend
// and the booking status rules enforced by the admin screens.
package booking

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Status is the lifecycle state of a booking request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled}
}

// ParseStatus parses a status name. An empty string or "all" yields "" (no filter).
func ParseStatus(s string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "all":
		return "", nil
	case string(StatusPending), string(StatusConfirmed), string(StatusCompleted), string(StatusCanceled):
		return Status(v), nil
	default:
		return "", fmt.Errorf("invalid booking status %q", s)
	}
}

// Label returns the human-readable label shown in admin tables.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusCompleted:
		return "Completed"
	case StatusCanceled:
		return "Canceled"
	default:
		return string(s)
	}
}

// NextStatuses returns the transitions an admin may apply from s.
// pending -> confirmed | canceled, confirmed -> completed; everything else is final.
func (s Status) NextStatuses() []Status {
	switch s {
	case StatusPending:
		return []Status{StatusConfirmed, StatusCanceled}
	case StatusConfirmed:
		return []Status{StatusCompleted}
	default:
		return nil
	}
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, n := range s.NextStatuses() {
		if n == next {
			return true
		}
	}
	return false
}

// Category groups courts by sport.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Court is a bookable facility.
type Court struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	PricePerHour float64  `json:"price_per_hour"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	IsActive     bool     `json:"is_active"`
	CategoryID   string   `json:"category_id"`
	Category     Category `json:"categories"`
}

// HasLocation reports whether the court carries map coordinates.
func (c Court) HasLocation() bool { return c.Latitude != nil && c.Longitude != nil }

// CourtInput is the payload for creating or updating a court.
type CourtInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	PricePerHour float64  `json:"price_per_hour"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	IsActive     bool     `json:"is_active"`
	CategoryID   string   `json:"category_id"`
}

// MaintenanceBlock takes a court out of service for part of a day.
type MaintenanceBlock struct {
	ID        string   `json:"id"`
	CourtID   string   `json:"court_id"`
	BlockDate string   `json:"block_date"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Reason    string   `json:"reason,omitempty"`
	Court     CourtRef `json:"courts"`
}

// MaintenanceInput is the payload for scheduling a maintenance block.
type MaintenanceInput struct {
	CourtID   string `json:"court_id"`
	BlockDate string `json:"block_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason,omitempty"`
}

// BookingRequest is the payload a customer submits to reserve a court. New requests
// always start pending.
type BookingRequest struct {
	CourtID       string  `json:"court_id"`
	BookingDate   string  `json:"booking_date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Notes         string  `json:"notes,omitempty"`
	TotalPrice    float64 `json:"total_price"`
	Status        Status  `json:"status"`
}

// Layouts of the date and time-of-day strings exchanged with the backend.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ErrEmptySlot is returned when a time range does not end after it starts.
var ErrEmptySlot = errors.New("end time must be after start time")

// SlotHours returns the length in hours of the range start-end on date.
func SlotHours(date, start, end string) (float64, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return 0, fmt.Errorf("invalid date %q", date)
	}
	from, err := time.Parse(TimeLayout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q", start)
	}
	to, err := time.Parse(TimeLayout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q", end)
	}
	if !to.After(from) {
		return 0, ErrEmptySlot
	}
	return to.Sub(from).Hours(), nil
}

// QuotePrice prices a booking of start-end on date at pricePerHour, rounded to whole dong.
func QuotePrice(date, start, end string, pricePerHour float64) (float64, error) {
	hours, err := SlotHours(date, start, end)
	if err != nil {
		return 0, err
	}
	return math.Round(hours * pricePerHour), nil
}

// CourtRef is the court summary embedded in a booking.
type CourtRef struct {
	Name     string   `json:"name"`
	Category Category `json:"categories"`
}

// Booking is a court reservation request as reported by the backend.
type Booking struct {
	ID            string   `json:"id"`
	CourtID       string   `json:"court_id"`
	BookingDate   string   `json:"booking_date"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Status        Status   `json:"status"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
	Notes         string   `json:"notes,omitempty"`
	TotalPrice    float64  `json:"total_price"`
	Court         CourtRef `json:"courts"`
}

// DashboardStats are the aggregate counts shown on the admin dashboard.
type DashboardStats struct {
	TotalCourts     int `json:"totalCourts"`
	TotalCategories int `json:"totalCategories"`
	TotalBookings   int `json:"totalBookings"`
	PendingBookings int `json:"pendingBookings"`
}

// Place is a geocoded address candidate.
type Place struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}
