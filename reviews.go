// reviews.go

package main

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *Server) createReview(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	insertedID, err := s.store.InsertOne(c.Request.Context(), reviewsCollection, doc)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"acknowledged": true, "insertedId": insertedID})
}

func (s *Server) listReviews(c *gin.Context) {
	reviews, err := s.store.List(c.Request.Context(), reviewsCollection, bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reviews)
}
