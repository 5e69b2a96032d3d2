// users.go

package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// upsertUser is both register and login: the document replaces whatever is
// stored for that email (or creates it), and a fresh token comes back with
// the write result either way.
func (s *Server) upsertUser(c *gin.Context) {
	email := c.Param("email")
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	doc["email"] = email
	result, err := s.store.Upsert(c.Request.Context(), usersCollection, bson.M{"email": email}, doc)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	token, err := s.tokens.Issue(email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"result": result, "token": token})
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.store.List(c.Request.Context(), usersCollection, bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, users)
}

// deleteUser removes the user and answers with whoever is left.
func (s *Server) deleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	if _, err := s.store.DeleteByID(c.Request.Context(), usersCollection, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	users, err := s.store.List(c.Request.Context(), usersCollection, bson.M{})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, users)
}

func (s *Server) adminStatus(c *gin.Context) {
	user, err := s.store.FindOne(c.Request.Context(), usersCollection, bson.M{"email": c.Param("email")})
	if err == mongo.ErrNoDocuments {
		c.JSON(404, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"admin": docRole(user) == adminRole})
}

// isAdmin answers whether the stored record for email carries the admin
// role. A missing record is simply not an admin.
func (s *Server) isAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.store.FindOne(ctx, usersCollection, bson.M{"email": email})
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return docRole(user) == adminRole, nil
}

// makeAdmin promotes the target email. Only a requester whose own stored
// role is already admin may do this; the requester comes from the token.
func (s *Server) makeAdmin(c *gin.Context) {
	requester := c.GetString("email")
	ok, err := s.isAdmin(c.Request.Context(), requester)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(403, gin.H{"error": "forbidden"})
		return
	}
	result, err := s.store.UpdateOne(c.Request.Context(), usersCollection,
		bson.M{"email": c.Param("email")}, bson.M{"role": adminRole})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"result": result})
}
