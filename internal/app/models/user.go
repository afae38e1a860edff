package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User mirrors the user-management subsystem's document. This service only
// reads it to resolve doctors; it never creates or mutates users.
type User struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName        string             `json:"firstName" bson:"firstName"`
	LastName         string             `json:"lastName" bson:"lastName"`
	Email            string             `json:"email" bson:"email"`
	Role             string             `json:"role" bson:"role"`
	DoctorDepartment string             `json:"doctorDepartment,omitempty" bson:"doctorDepartment,omitempty"`
}
