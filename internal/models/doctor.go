package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorCategory string

const (
	CategoryPublic    DoctorCategory = "Public"
	CategoryPrivate   DoctorCategory = "Private"
	CategoryCommunity DoctorCategory = "Community"
	CategorySpecialty DoctorCategory = "Specialty"
)

const (
	DefaultDoctorRating = 4.5
	DefaultWorkingHours = "Mon - Sat (08:30 AM - 5:00 PM)"
)

type Doctor struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                 string             `bson:"name" json:"name"`
	Specialization       string             `bson:"specialization" json:"specialization"`
	Hospital             string             `bson:"hospital" json:"hospital"`
	Rating               float64            `bson:"rating" json:"rating"`
	ReviewCount          int                `bson:"reviewCount" json:"reviewCount"`
	YearsExperience      int                `bson:"yearsExperience" json:"yearsExperience"`
	PatientCount         int                `bson:"patientCount" json:"patientCount"`
	ProfileImage         string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	About                string             `bson:"about,omitempty" json:"about,omitempty"`
	WorkingDays          []string           `bson:"workingDays" json:"workingDays"`
	WorkingHours         string             `bson:"workingHours" json:"workingHours"`
	CommunicationMethods []string           `bson:"communicationMethods" json:"communicationMethods"`
	Category             DoctorCategory     `bson:"category" json:"category"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
}
