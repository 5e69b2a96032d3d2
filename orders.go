// orders.go

package main

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Server) createOrder(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	insertedID, err := s.store.InsertOne(c.Request.Context(), ordersCollection, doc)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"acknowledged": true, "insertedId": insertedID})
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.store.List(c.Request.Context(), ordersCollection, bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	order, err := s.store.FindOne(c.Request.Context(), ordersCollection, bson.M{"_id": id})
	if err == mongo.ErrNoDocuments {
		c.JSON(404, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, order)
}

func (s *Server) updateOrder(c *gin.Context) {
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
	modified, err := s.store.UpdateByID(c.Request.Context(), ordersCollection, id, patch)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if modified == 0 {
		c.JSON(404, gin.H{"message": "Order not found"})
		return
	}
	c.JSON(200, gin.H{"message": "Order updated successfully"})
}

// ordersByEmail lists the orders recorded against an email. The association
// is advisory, nothing checks the email belongs to a stored user.
func (s *Server) ordersByEmail(c *gin.Context) {
	orders, err := s.store.List(c.Request.Context(), ordersCollection, bson.M{"email": c.Param("email")})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, orders)
}
