package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Operation statuses.
const (
	OperationStatusScheduled  = "Scheduled"
	OperationStatusInProgress = "In Progress"
	OperationStatusCompleted  = "Completed"
	OperationStatusCancelled  = "Cancelled"
)

// Operation is a scheduled surgical procedure in a theater.
type Operation struct {
	ID              string             `json:"id" bson:"id"`
	ObjectID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	OperationNumber string             `json:"operation_number" bson:"operation_number"`
	OperationDate   time.Time          `json:"operation_date" bson:"operation_date"`
	Status          string             `json:"status" bson:"status"`
	Type            string             `json:"type" bson:"type"`
	PatientID       string             `json:"patient_id" bson:"patient_id"`
	ProviderID      string             `json:"provider_id" bson:"provider_id"`
	Theater         string             `json:"theater,omitempty" bson:"theater,omitempty"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
	StartTime       *time.Time         `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime         *time.Time         `json:"end_time,omitempty" bson:"end_time,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// Patient is a person a procedure is scheduled for.
type Patient struct {
	ID             string             `json:"id" bson:"id"`
	ObjectID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Age            int                `json:"age" bson:"age"`
	Gender         string             `json:"gender,omitempty" bson:"gender,omitempty"`
	BloodGroup     string             `json:"blood_group,omitempty" bson:"blood_group,omitempty"`
	ContactInfo    string             `json:"contact_info,omitempty" bson:"contact_info,omitempty"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	MedicalHistory string             `json:"medical_history,omitempty" bson:"medical_history,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

// Provider is a clinician who performs or assists procedures.
type Provider struct {
	ID             string             `json:"id" bson:"id"`
	ObjectID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID         string             `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Type           string             `json:"type" bson:"type"`
	Specialization string             `json:"specialization,omitempty" bson:"specialization,omitempty"`
	LicenseNumber  string             `json:"license_number,omitempty" bson:"license_number,omitempty"`
	Department     string             `json:"department,omitempty" bson:"department,omitempty"`
	ContactInfo    string             `json:"contact_info,omitempty" bson:"contact_info,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}
