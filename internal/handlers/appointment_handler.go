package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mediconnect/mediconnect-api/internal/models"
)

type CreateAppointmentRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required,oneof=morning evening"`
	Symptoms string `json:"symptoms"`
}

// parseAppointmentDate accepts a full RFC3339 timestamp or a bare calendar
// date, which is what the mobile client sends.
func parseAppointmentDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// ToAppointment builds the persisted record from the allow-listed request
// fields plus the server-set ones. The caller's identity always comes from
// the auth context, never from the body.
func (r CreateAppointmentRequest) ToAppointment(userID, doctorID primitive.ObjectID, date time.Time) models.Appointment {
	return models.Appointment{
		ID:        primitive.NewObjectID(),
		DoctorID:  doctorID,
		UserID:    userID,
		Date:      date,
		Time:      r.Time,
		TimeSlot:  models.TimeSlot(r.TimeSlot),
		Symptoms:  r.Symptoms,
		Status:    models.StatusPending,
		Amount:    models.DefaultAppointmentAmount,
		CreatedAt: time.Now().UTC(),
	}
}

// --- CREATE APPOINTMENT ---
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	date, err := parseAppointmentDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, use RFC3339 or YYYY-MM-DD"})
		return
	}

	doctorID, err := primitive.ObjectIDFromHex(req.DoctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	userIDHex, _ := c.Get("userID")
	userID, err := primitive.ObjectIDFromHex(userIDHex.(string))
	if err != nil {
		serverError(c, "parse user id from token", err)
		return
	}

	apt := req.ToAppointment(userID, doctorID, date)

	collection := h.DB.Collection("appointments")
	if _, err := collection.InsertOne(context.TODO(), apt); err != nil {
		serverError(c, "create appointment", err)
		return
	}

	// Composed re-read: resolve both references into full sub-documents for
	// the response. The booking itself is already persisted at this point.
	// Doctor existence is not checked before insert, so a dangling reference
	// simply expands to a zero-valued doctor.
	var doctor models.Doctor
	err = h.DB.Collection("doctors").FindOne(context.TODO(), bson.M{"_id": apt.DoctorID}).Decode(&doctor)
	if err != nil && err != mongo.ErrNoDocuments {
		serverError(c, "expand appointment doctor", err)
		return
	}

	var user models.User
	err = h.DB.Collection("users").FindOne(context.TODO(), bson.M{"_id": apt.UserID}).Decode(&user)
	if err != nil {
		serverError(c, "expand appointment user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": apt.Detail(doctor, user),
	})
}

// --- LIST CALLER'S APPOINTMENTS (date descending, doctor expanded) ---
func (h *Handler) GetUserAppointments(c *gin.Context) {
	userIDHex, _ := c.Get("userID")
	userID, err := primitive.ObjectIDFromHex(userIDHex.(string))
	if err != nil {
		serverError(c, "parse user id from token", err)
		return
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	collection := h.DB.Collection("appointments")
	cursor, err := collection.Find(context.TODO(), bson.M{"user": userID}, findOptions)
	if err != nil {
		serverError(c, "list appointments", err)
		return
	}
	defer cursor.Close(context.TODO())

	var appointments []models.Appointment
	if err = cursor.All(context.TODO(), &appointments); err != nil {
		serverError(c, "decode appointments", err)
		return
	}

	views, err := h.expandDoctors(context.TODO(), appointments)
	if err != nil {
		serverError(c, "expand appointment doctors", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": views})
}

// expandDoctors resolves the doctor reference of each appointment with a
// single batched lookup. A dangling reference leaves a zero-valued doctor in
// the view rather than failing the whole listing.
func (h *Handler) expandDoctors(ctx context.Context, appointments []models.Appointment) ([]models.AppointmentWithDoctor, error) {
	views := make([]models.AppointmentWithDoctor, 0, len(appointments))
	if len(appointments) == 0 {
		return views, nil
	}

	seen := make(map[primitive.ObjectID]bool)
	ids := make([]primitive.ObjectID, 0, len(appointments))
	for _, apt := range appointments {
		if !seen[apt.DoctorID] {
			seen[apt.DoctorID] = true
			ids = append(ids, apt.DoctorID)
		}
	}

	cursor, err := h.DB.Collection("doctors").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err = cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Doctor, len(doctors))
	for _, d := range doctors {
		byID[d.ID] = d
	}

	for _, apt := range appointments {
		views = append(views, apt.WithDoctor(byID[apt.DoctorID]))
	}
	return views, nil
}
