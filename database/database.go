package database

import (
	"context"
	"fmt"
	"time"

	"agent-dashboard/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ctx = context.TODO()

// UsersCollection holds dashboard user accounts, set up in main.
var UsersCollection *mongo.Collection

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("db is not available: %w", err)
	}

	return client, nil
}

// GetUserData looks up a dashboard user account by login.
func GetUserData(userLogin string) (model.UserData, error) {
	var user model.UserData
	err := UsersCollection.FindOne(ctx, bson.D{primitive.E{Key: "login", Value: userLogin}}).Decode(&user)
	if err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %w", err)
	}
	return user, nil
}
