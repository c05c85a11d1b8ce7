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

type CreateArticleRequest struct {
	Title         string     `json:"title" binding:"required"`
	Subtitle      string     `json:"subtitle" binding:"required"`
	Content       string     `json:"content" binding:"required"`
	ImageURL      string     `json:"imageUrl"`
	Author        string     `json:"author" binding:"required"`
	PublishedDate *time.Time `json:"publishedDate"`
}

func (r CreateArticleRequest) ToArticle() models.Article {
	now := time.Now().UTC()
	article := models.Article{
		ID:            primitive.NewObjectID(),
		Title:         r.Title,
		Subtitle:      r.Subtitle,
		Content:       r.Content,
		ImageURL:      r.ImageURL,
		Author:        r.Author,
		PublishedDate: now,
		CreatedAt:     now,
	}
	if r.PublishedDate != nil {
		article.PublishedDate = *r.PublishedDate
	}
	return article
}

// --- LIST ARTICLES (newest first) ---
func (h *Handler) GetArticles(c *gin.Context) {
	findOptions := options.Find().SetSort(bson.D{{Key: "publishedDate", Value: -1}})

	collection := h.DB.Collection("articles")
	cursor, err := collection.Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		serverError(c, "list articles", err)
		return
	}
	defer cursor.Close(context.TODO())

	var articles []models.Article
	if err = cursor.All(context.TODO(), &articles); err != nil {
		serverError(c, "decode articles", err)
		return
	}

	if articles == nil {
		articles = make([]models.Article, 0)
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// --- GET ARTICLE BY ID ---
func (h *Handler) GetArticleByID(c *gin.Context) {
	articleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var article models.Article
	collection := h.DB.Collection("articles")
	err = collection.FindOne(context.TODO(), bson.M{"_id": articleID}).Decode(&article)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Article not found"})
		return
	}
	if err != nil {
		serverError(c, "get article", err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// --- CREATE ARTICLE ---
func (h *Handler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if !bindJSON(c, &req) {
		return
	}

	article := req.ToArticle()

	collection := h.DB.Collection("articles")
	if _, err := collection.InsertOne(context.TODO(), article); err != nil {
		serverError(c, "create article", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Article created successfully", "article": article})
}
