// routes.go

package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	store  Store
	tokens *TokenService
}

func NewServer(store Store, tokens *TokenService) *Server {
	return &Server{store: store, tokens: tokens}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://apex-hardwares.web.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "apex hardwares server is running")
	})

	// Products
	r.GET("/product", s.listProducts)
	r.GET("/product/:id", s.getProduct)
	r.POST("/product", s.createProduct)
	r.PUT("/product/:id", s.updateProduct)
	r.DELETE("/product/:id", s.deleteProduct)

	// Reviews
	r.GET("/reviews", s.listReviews)
	r.POST("/reviews", s.createReview)

	// Orders and users: order intake and the login/register upsert stay
	// open, the order views and admin escalation sit behind the token.
	r.POST("/order", s.createOrder)
	r.GET("/admin/:email", s.adminStatus)
	r.PUT("/user/:email", s.upsertUser)
	r.GET("/user", s.listUsers)
	r.DELETE("/users/:userId", s.deleteUser)

	auth := r.Group("/", s.AuthMiddleware)
	{
		auth.GET("/orders", s.listOrders)
		auth.GET("/orders/:id", s.getOrder)
		auth.PUT("/orders/:id", s.updateOrder)
		auth.GET("/order-by/:email", s.ordersByEmail)
		auth.PUT("/userx/admin/:email", s.makeAdmin)
	}

	return r
}
