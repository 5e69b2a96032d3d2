// main.go

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	godotenv.Load()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = fmt.Sprintf("mongodb+srv://%s:%s@cluster0.acd3k.mongodb.net/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"), os.Getenv("DB_PASS"))
	}
	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		log.Fatal(err)
	}
	db := client.Database("apex_hardwares")

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET is not set")
	}

	server := NewServer(NewMongoStore(db), NewTokenService([]byte(secret)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Println("apex hardwares server listening on port", port)
	server.Router().Run(":" + port)
}
