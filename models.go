// models.go

package main

import "go.mongodb.org/mongo-driver/bson"

// Documents in every collection are freeform: handlers bind request bodies
// straight to bson.M and hand them to the store untouched. Only the fields
// the server itself reads are named here.

const (
	productsCollection = "products"
	ordersCollection   = "orders"
	usersCollection    = "users"
	reviewsCollection  = "reviews"
)

const adminRole = "admin"

// docRole reads the role field off a user document, tolerating its absence.
func docRole(doc bson.M) string {
	role, _ := doc["role"].(string)
	return role
}
