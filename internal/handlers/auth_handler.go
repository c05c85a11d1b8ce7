package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mediconnect/mediconnect-api/internal/models"
	"github.com/mediconnect/mediconnect-api/internal/utils"
)

type RegisterUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

// RegisterUser creates an account. The stored password is a bcrypt hash and
// is never serialized back to the client.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		serverError(c, "hash password", err)
		return
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  hashedPassword,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}

	collection := h.DB.Collection("users")
	if _, err = collection.InsertOne(context.TODO(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		serverError(c, "create user", err)
		return
	}
	logrus.WithField("email", req.Email).Info("user registered")

	c.JSON(http.StatusCreated, user)
}

// Login checks credentials and hands out a signed token.
func (h *Handler) Login(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if !bindJSON(c, &loginReq) {
		return
	}

	var user models.User
	collection := h.DB.Collection("users")
	err := collection.FindOne(context.TODO(), bson.M{"email": loginReq.Email}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !utils.CheckPasswordHash(loginReq.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(h.JWT.Secret, user.ID.Hex(), h.JWT.Expiry)
	if err != nil {
		serverError(c, "generate token", err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
