// products.go

package main

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.store.List(c.Request.Context(), productsCollection, bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, products)
}

func (s *Server) getProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	product, err := s.store.FindOne(c.Request.Context(), productsCollection, bson.M{"_id": id})
	if err == mongo.ErrNoDocuments {
		c.JSON(404, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, product)
}

func (s *Server) createProduct(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	insertedID, err := s.store.InsertOne(c.Request.Context(), productsCollection, doc)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"acknowledged": true, "insertedId": insertedID})
}

// updateProduct merge-patches the named product. A zero modified count is
// reported as not found whether the id is absent or the patch was a no-op.
func (s *Server) updateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	var patch bson.M
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	modified, err := s.store.UpdateByID(c.Request.Context(), productsCollection, id, patch)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if modified == 0 {
		c.JSON(404, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(200, gin.H{"message": "Product updated successfully"})
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	deleted, err := s.store.DeleteByID(c.Request.Context(), productsCollection, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"acknowledged": true, "deletedCount": deleted})
}
