package domain

import "time"

// Dashboard
const (
	UpcomingWindow    = 30 * 24 * time.Hour // окно "ближайших" съемок
	UpcomingListLimit = 5
)

// Auth
const (
	AdminUsername        = "Admin"
	DefaultAdminPassword = "admin"
	MinPasswordLength    = 4
)

// Time format constants
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = time.RFC3339
)

// Booking events для метрик
const (
	EventBookingCreated   = "created"
	EventBookingUpdated   = "updated"
	EventBookingCompleted = "completed"
	EventBookingDeleted   = "deleted"
)
