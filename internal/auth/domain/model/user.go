package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default profile fields applied at signup. The signup form only collects a
// username and password; the rest of the profile is filled in later by an
// administrator.
const (
	DefaultName        = "Default Name"
	DefaultRole        = "User"
	DefaultEmailDomain = "example.com"
)

// User represents an application user holding a credential.
// The password hash is never serialized to JSON.
type User struct {
	ID           string             `json:"id" bson:"id,omitempty"`
	ObjectID     primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Role         string             `json:"role" bson:"role"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}
