package handlers

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mediconnect/mediconnect-api/internal/models"
)

type CreateDoctorRequest struct {
	Name                 string   `json:"name" binding:"required"`
	Specialization       string   `json:"specialization" binding:"required"`
	Hospital             string   `json:"hospital" binding:"required"`
	Rating               *float64 `json:"rating"`
	ReviewCount          int      `json:"reviewCount"`
	YearsExperience      int      `json:"yearsExperience"`
	PatientCount         int      `json:"patientCount"`
	ProfileImage         string   `json:"profileImage"`
	About                string   `json:"about"`
	WorkingDays          []string `json:"workingDays"`
	WorkingHours         string   `json:"workingHours"`
	CommunicationMethods []string `json:"communicationMethods"`
	Category             string   `json:"category" binding:"omitempty,oneof=Public Private Community Specialty"`
}

// ToDoctor builds the persisted record, filling in defaults for omitted
// fields. The category has already passed the oneof check.
func (r CreateDoctorRequest) ToDoctor() models.Doctor {
	doctor := models.Doctor{
		ID:                   primitive.NewObjectID(),
		Name:                 r.Name,
		Specialization:       r.Specialization,
		Hospital:             r.Hospital,
		Rating:               models.DefaultDoctorRating,
		ReviewCount:          r.ReviewCount,
		YearsExperience:      r.YearsExperience,
		PatientCount:         r.PatientCount,
		ProfileImage:         r.ProfileImage,
		About:                r.About,
		WorkingDays:          r.WorkingDays,
		WorkingHours:         r.WorkingHours,
		CommunicationMethods: r.CommunicationMethods,
		Category:             models.DoctorCategory(r.Category),
		CreatedAt:            time.Now().UTC(),
	}
	if r.Rating != nil {
		doctor.Rating = *r.Rating
	}
	if doctor.WorkingHours == "" {
		doctor.WorkingHours = models.DefaultWorkingHours
	}
	if doctor.Category == "" {
		doctor.Category = models.CategoryPublic
	}
	return doctor
}

// doctorFilter builds the listing filter: specialization is a
// case-insensitive substring match, category an exact match.
func doctorFilter(specialization, category string) bson.M {
	filter := bson.M{}
	if specialization != "" {
		filter["specialization"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(specialization),
			Options: "i",
		}
	}
	if category != "" {
		filter["category"] = category
	}
	return filter
}

// --- LIST DOCTORS (with filtering, rating descending) ---
func (h *Handler) GetDoctors(c *gin.Context) {
	filter := doctorFilter(c.Query("specialization"), c.Query("category"))

	findOptions := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})

	collection := h.DB.Collection("doctors")
	cursor, err := collection.Find(context.TODO(), filter, findOptions)
	if err != nil {
		serverError(c, "list doctors", err)
		return
	}
	defer cursor.Close(context.TODO())

	var doctors []models.Doctor
	if err = cursor.All(context.TODO(), &doctors); err != nil {
		serverError(c, "decode doctors", err)
		return
	}

	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// --- GET DOCTOR BY ID ---
func (h *Handler) GetDoctorByID(c *gin.Context) {
	doctorID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	var doctor models.Doctor
	collection := h.DB.Collection("doctors")
	err = collection.FindOne(context.TODO(), bson.M{"_id": doctorID}).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Doctor not found"})
		return
	}
	if err != nil {
		serverError(c, "get doctor", err)
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// --- CREATE DOCTOR ---
func (h *Handler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	doctor := req.ToDoctor()

	collection := h.DB.Collection("doctors")
	if _, err := collection.InsertOne(context.TODO(), doctor); err != nil {
		serverError(c, "create doctor", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Doctor created successfully", "doctor": doctor})
}
