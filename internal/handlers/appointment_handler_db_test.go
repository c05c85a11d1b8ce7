package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mediconnect/mediconnect-api/internal/config"
	"github.com/mediconnect/mediconnect-api/internal/models"
)

// serveAs runs the handler with the given caller identity already resolved,
// the way the auth middleware would have left it.
func serveAs(mt *mtest.T, userID primitive.ObjectID, method, path string, body interface{}, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	mt.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	identify := func(c *gin.Context) { c.Set("userID", userID.Hex()) }
	switch method {
	case http.MethodGet:
		r.GET(path, identify, handler)
	case http.MethodPost:
		r.POST(path, identify, handler)
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(mt, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func appointmentDoc(id, doctorID, userID primitive.ObjectID, date time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "doctor", Value: doctorID},
		{Key: "user", Value: userID},
		{Key: "date", Value: primitive.NewDateTimeFromTime(date)},
		{Key: "time", Value: "10:30 AM"},
		{Key: "timeSlot", Value: "morning"},
		{Key: "status", Value: "pending"},
		{Key: "amount", Value: float64(models.DefaultAppointmentAmount)},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(date)},
	}
}

func doctorDoc(id primitive.ObjectID, name string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "specialization", Value: "Cardiology"},
		{Key: "hospital", Value: "CHUK"},
		{Key: "rating", Value: 4.5},
		{Key: "category", Value: "Public"},
	}
}

func TestGetUserAppointments(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("queries only the caller and sorts date descending", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		doctorID := primitive.NewObjectID()
		later := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
		earlier := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

		aptNS := mt.DB.Name() + ".appointments"
		docNS := mt.DB.Name() + ".doctors"
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, aptNS, mtest.FirstBatch,
				appointmentDoc(primitive.NewObjectID(), doctorID, userID, later),
				appointmentDoc(primitive.NewObjectID(), doctorID, userID, earlier),
			),
			mtest.CreateCursorResponse(0, docNS, mtest.FirstBatch,
				doctorDoc(doctorID, "Dr. Test"),
			),
		)

		h := NewHandler(mt.DB, config.JWTConfig{})
		w := serveAs(mt, userID, http.MethodGet, "/appointments/user", nil, h.GetUserAppointments)

		require.Equal(mt, http.StatusOK, w.Code)

		var resp struct {
			Appointments []models.AppointmentWithDoctor `json:"appointments"`
		}
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(mt, resp.Appointments, 2)

		// Ordering: returned order preserves the store's date-descending sort.
		assert.True(mt, !resp.Appointments[0].Date.Before(resp.Appointments[1].Date))
		for _, apt := range resp.Appointments {
			assert.Equal(mt, userID, apt.UserID)
			assert.Equal(mt, "Dr. Test", apt.Doctor.Name)
		}

		// Isolation: the find was filtered to the caller and sorted by date.
		findEvt := mt.GetStartedEvent()
		require.NotNil(mt, findEvt)
		assert.Equal(mt, "find", findEvt.CommandName)
		filterUser, ok := findEvt.Command.Lookup("filter", "user").ObjectIDOK()
		require.True(mt, ok)
		assert.Equal(mt, userID, filterUser)
		sortDate, err := findEvt.Command.LookupErr("sort", "date")
		require.NoError(mt, err)
		assert.Equal(mt, int64(-1), sortDate.AsInt64())

		// The doctor expansion is one batched lookup by id.
		expandEvt := mt.GetStartedEvent()
		require.NotNil(mt, expandEvt)
		assert.Equal(mt, "find", expandEvt.CommandName)
		inFirst, ok := expandEvt.Command.Lookup("filter", "_id", "$in", "0").ObjectIDOK()
		require.True(mt, ok)
		assert.Equal(mt, doctorID, inFirst)
	})

	mt.Run("returns an empty list when the caller has no appointments", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		aptNS := mt.DB.Name() + ".appointments"
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, aptNS, mtest.FirstBatch),
		)

		h := NewHandler(mt.DB, config.JWTConfig{})
		w := serveAs(mt, userID, http.MethodGet, "/appointments/user", nil, h.GetUserAppointments)

		require.Equal(mt, http.StatusOK, w.Code)
		assert.JSONEq(mt, `{"appointments":[]}`, w.Body.String())
	})

	mt.Run("dangling doctor reference expands to a zero-valued doctor", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		doctorID := primitive.NewObjectID()
		date := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

		aptNS := mt.DB.Name() + ".appointments"
		docNS := mt.DB.Name() + ".doctors"
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, aptNS, mtest.FirstBatch,
				appointmentDoc(primitive.NewObjectID(), doctorID, userID, date),
			),
			mtest.CreateCursorResponse(0, docNS, mtest.FirstBatch),
		)

		h := NewHandler(mt.DB, config.JWTConfig{})
		w := serveAs(mt, userID, http.MethodGet, "/appointments/user", nil, h.GetUserAppointments)

		require.Equal(mt, http.StatusOK, w.Code)

		var resp struct {
			Appointments []models.AppointmentWithDoctor `json:"appointments"`
		}
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(mt, resp.Appointments, 1)
		assert.True(mt, resp.Appointments[0].Doctor.ID.IsZero())
		assert.Equal(mt, userID, resp.Appointments[0].UserID)
	})
}

func TestCreateAppointmentExpandsReferences(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("booking returns expanded doctor and user without password", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		doctorID := primitive.NewObjectID()

		docNS := mt.DB.Name() + ".doctors"
		userNS := mt.DB.Name() + ".users"
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, docNS, mtest.FirstBatch,
				doctorDoc(doctorID, "Dr. Test"),
			),
			mtest.CreateCursorResponse(0, userNS, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: userID},
				{Key: "fullName", Value: "Jane Doe"},
				{Key: "email", Value: "jane@example.com"},
				{Key: "password", Value: "$2a$12$secret-hash"},
			}),
		)

		h := NewHandler(mt.DB, config.JWTConfig{})
		w := serveAs(mt, userID, http.MethodPost, "/appointments", gin.H{
			"doctorId": doctorID.Hex(),
			"date":     "2025-03-14",
			"time":     "10:30 AM",
			"timeSlot": "morning",
			"symptoms": "headache",
		}, h.CreateAppointment)

		require.Equal(mt, http.StatusCreated, w.Code)

		var resp struct {
			Message     string                   `json:"message"`
			Appointment models.AppointmentDetail `json:"appointment"`
		}
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(mt, "Appointment booked successfully", resp.Message)
		assert.Equal(mt, "Dr. Test", resp.Appointment.Doctor.Name)
		assert.Equal(mt, "Jane Doe", resp.Appointment.User.FullName)
		assert.Equal(mt, models.StatusPending, resp.Appointment.Status)
		assert.Equal(mt, float64(models.DefaultAppointmentAmount), resp.Appointment.Amount)
		assert.NotContains(mt, w.Body.String(), "secret-hash")

		// The insert carried the caller's identity, not anything client-sent.
		insertEvt := mt.GetStartedEvent()
		require.NotNil(mt, insertEvt)
		assert.Equal(mt, "insert", insertEvt.CommandName)
		insertedUser, ok := insertEvt.Command.Lookup("documents", "0", "user").ObjectIDOK()
		require.True(mt, ok)
		assert.Equal(mt, userID, insertedUser)
	})

	mt.Run("booking against a dangling doctor still succeeds", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		doctorID := primitive.NewObjectID()

		docNS := mt.DB.Name() + ".doctors"
		userNS := mt.DB.Name() + ".users"
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, docNS, mtest.FirstBatch),
			mtest.CreateCursorResponse(0, userNS, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: userID},
				{Key: "fullName", Value: "Jane Doe"},
			}),
		)

		h := NewHandler(mt.DB, config.JWTConfig{})
		w := serveAs(mt, userID, http.MethodPost, "/appointments", gin.H{
			"doctorId": doctorID.Hex(),
			"date":     "2025-03-14",
			"time":     "10:30 AM",
			"timeSlot": "morning",
		}, h.CreateAppointment)

		require.Equal(mt, http.StatusCreated, w.Code)

		var resp struct {
			Appointment models.AppointmentDetail `json:"appointment"`
		}
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(mt, resp.Appointment.Doctor.ID.IsZero())
		assert.Equal(mt, "Jane Doe", resp.Appointment.User.FullName)
	})
}
