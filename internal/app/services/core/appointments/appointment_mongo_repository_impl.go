package appointments

import (
	"context"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// CreateAppointment inserts unconditionally. No uniqueness constraint exists
// across (patient, date, doctor); the same booking can be persisted twice.
func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	now := time.Now().UTC()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	doc := bson.M{
		"firstName":        appointment.FirstName,
		"lastName":         appointment.LastName,
		"email":            appointment.Email,
		"phone":            appointment.Phone,
		"nic":              appointment.NIC,
		"dob":              appointment.DOB,
		"gender":           appointment.Gender,
		"appointment_date": appointment.AppointmentDate,
		"department":       appointment.Department,
		"doctor":           appointment.Doctor,
		"doctorId":         appointment.DoctorID,
		"hasVisited":       appointment.HasVisited,
		"address":          appointment.Address,
		"status":           appointment.Status,
		"paymentStatus":    appointment.PaymentStatus,
		"razorpayPaymentId": appointment.RazorpayPaymentID,
		"razorpayOrderId":   appointment.RazorpayOrderID,
		"createdAt":         appointment.CreatedAt,
		"updatedAt":         appointment.UpdatedAt,
	}

	result, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID := result.InsertedID.(primitive.ObjectID)
	appointment.ID = objectID
	return objectID.Hex(), nil
}

func (r *AppointmentMongoRepository) FindByFilter(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

// UpdateStatusByID sets the status field and nothing else; identity and
// payment fields cannot be mutated through this path.
func (r *AppointmentMongoRepository) UpdateStatusByID(ctx context.Context, appointmentID string, status models.AppointmentStatus) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
