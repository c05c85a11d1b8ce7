package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

type TimeSlot string

const (
	TimeSlotMorning TimeSlot = "morning"
	TimeSlotEvening TimeSlot = "evening"
)

// DefaultAppointmentAmount is the flat consultation fee attached to every
// booking. There is no payment flow; the field is informational.
const DefaultAppointmentAmount = 5100

type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorID  primitive.ObjectID `bson:"doctor" json:"doctor"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	Date      time.Time          `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	TimeSlot  TimeSlot           `bson:"timeSlot" json:"timeSlot"`
	Symptoms  string             `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Status    AppointmentStatus  `bson:"status" json:"status"`
	Amount    float64            `bson:"amount" json:"amount"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// AppointmentDetail is the read-side view of a booking with both references
// resolved into full sub-documents. The embedded User serializes without its
// password hash.
type AppointmentDetail struct {
	ID        primitive.ObjectID `json:"id"`
	Doctor    Doctor             `json:"doctor"`
	User      User               `json:"user"`
	Date      time.Time          `json:"date"`
	Time      string             `json:"time"`
	TimeSlot  TimeSlot           `json:"timeSlot"`
	Symptoms  string             `json:"symptoms,omitempty"`
	Status    AppointmentStatus  `json:"status"`
	Amount    float64            `json:"amount"`
	CreatedAt time.Time          `json:"createdAt"`
}

// AppointmentWithDoctor is the listing view: the doctor reference is resolved,
// the user stays an identifier.
type AppointmentWithDoctor struct {
	ID        primitive.ObjectID `json:"id"`
	Doctor    Doctor             `json:"doctor"`
	UserID    primitive.ObjectID `json:"user"`
	Date      time.Time          `json:"date"`
	Time      string             `json:"time"`
	TimeSlot  TimeSlot           `json:"timeSlot"`
	Symptoms  string             `json:"symptoms,omitempty"`
	Status    AppointmentStatus  `json:"status"`
	Amount    float64            `json:"amount"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Detail assembles the fully expanded view of an appointment.
func (a Appointment) Detail(doctor Doctor, user User) AppointmentDetail {
	user.Password = ""
	return AppointmentDetail{
		ID:        a.ID,
		Doctor:    doctor,
		User:      user,
		Date:      a.Date,
		Time:      a.Time,
		TimeSlot:  a.TimeSlot,
		Symptoms:  a.Symptoms,
		Status:    a.Status,
		Amount:    a.Amount,
		CreatedAt: a.CreatedAt,
	}
}

// WithDoctor assembles the listing view of an appointment.
func (a Appointment) WithDoctor(doctor Doctor) AppointmentWithDoctor {
	return AppointmentWithDoctor{
		ID:        a.ID,
		Doctor:    doctor,
		UserID:    a.UserID,
		Date:      a.Date,
		Time:      a.Time,
		TimeSlot:  a.TimeSlot,
		Symptoms:  a.Symptoms,
		Status:    a.Status,
		Amount:    a.Amount,
		CreatedAt: a.CreatedAt,
	}
}
