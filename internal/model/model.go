package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
}

type Specialization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Doctor struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Specialization     Specialization `json:"specialization"`
	Image              string         `json:"image"`
	Rating             float64        `json:"rating"`
	ReviewCount        int            `json:"reviewCount"`
	Education          string         `json:"education"`
	Experience         string         `json:"experience"`
	Bio                string         `json:"bio"`
	Languages          []string       `json:"languages"`
	ConsultationFee    int            `json:"consultationFee"`
	AvailableDays      []string       `json:"availableDays"`
	AvailableTimeSlots []string       `json:"availableTimeSlots"`
}

// AvailableOn reports whether the doctor works on the given weekday name.
func (d Doctor) AvailableOn(day string) bool {
	for _, v := range d.AvailableDays {
		if v == day {
			return true
		}
	}
	return false
}

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// DateLayout is the calendar-date format used for AppointmentDate.
const DateLayout = "2006-01-02"

type Appointment struct {
	ID              string            `json:"id"`
	DoctorID        string            `json:"doctorId"`
	UserID          string            `json:"userId"`
	PatientName     string            `json:"patientName"`
	PatientEmail    string            `json:"patientEmail"`
	PatientPhone    string            `json:"patientPhone"`
	AppointmentDate string            `json:"appointmentDate"`
	AppointmentTime string            `json:"appointmentTime"`
	Reason          string            `json:"reason"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// BookingRequest is everything a caller supplies to book. The id, status
// and creation time are assigned by the booking service.
type BookingRequest struct {
	DoctorID        string `json:"doctorId" validate:"required"`
	UserID          string `json:"userId" validate:"required"`
	PatientName     string `json:"patientName" validate:"required"`
	PatientEmail    string `json:"patientEmail" validate:"required,email"`
	PatientPhone    string `json:"patientPhone" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointmentTime" validate:"required"`
	Reason          string `json:"reason"`
}

// DateAvailability is one calendar day in a doctor's booking window.
type DateAvailability struct {
	Date        string `json:"date"`
	DayName     string `json:"dayName"`
	IsAvailable bool   `json:"isAvailable"`
}
