package doctors

import (
	"context"
	"errors"
	"hospicare-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeDoctorRepository struct {
	doctors []models.User
	err     error

	gotFirstName  string
	gotLastName   string
	gotDepartment string
}

func (f *fakeDoctorRepository) FindDoctors(ctx context.Context, firstName, lastName, department string) ([]models.User, error) {
	f.gotFirstName = firstName
	f.gotLastName = lastName
	f.gotDepartment = department
	return f.doctors, f.err
}

func TestDoctorResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Exactly One Match", func(t *testing.T) {
		doctorID := primitive.NewObjectID()
		repository := &fakeDoctorRepository{
			doctors: []models.User{
				{ID: doctorID, FirstName: "Asha", LastName: "Menon", Role: "Doctor", DoctorDepartment: "Cardiology"},
			},
		}
		resolver := NewDoctorResolver(repository, zap.NewNop())

		resolution, err := resolver.Resolve(ctx, "Asha", "Menon", "Cardiology")
		require.NoError(t, err)

		assert.Equal(t, ResolutionFound, resolution.Outcome)
		require.NotNil(t, resolution.Doctor)
		assert.Equal(t, doctorID, resolution.Doctor.ID)

		assert.Equal(t, "Asha", repository.gotFirstName, "lookup should pass the triple through unchanged")
		assert.Equal(t, "Menon", repository.gotLastName)
		assert.Equal(t, "Cardiology", repository.gotDepartment)
	})

	t.Run("No Match", func(t *testing.T) {
		resolver := NewDoctorResolver(&fakeDoctorRepository{}, zap.NewNop())

		resolution, err := resolver.Resolve(ctx, "Asha", "Menon", "Cardiology")
		require.NoError(t, err)

		assert.Equal(t, ResolutionNotFound, resolution.Outcome)
		assert.Nil(t, resolution.Doctor)
	})

	t.Run("Ambiguous Match", func(t *testing.T) {
		repository := &fakeDoctorRepository{
			doctors: []models.User{
				{ID: primitive.NewObjectID(), FirstName: "Asha", LastName: "Menon"},
				{ID: primitive.NewObjectID(), FirstName: "Asha", LastName: "Menon"},
			},
		}
		resolver := NewDoctorResolver(repository, zap.NewNop())

		resolution, err := resolver.Resolve(ctx, "Asha", "Menon", "Cardiology")
		require.NoError(t, err)

		assert.Equal(t, ResolutionConflict, resolution.Outcome, "two active doctors with the same name must not be auto-picked")
		assert.Nil(t, resolution.Doctor)
	})

	t.Run("Repository Error", func(t *testing.T) {
		repository := &fakeDoctorRepository{err: errors.New("connection reset")}
		resolver := NewDoctorResolver(repository, zap.NewNop())

		resolution, err := resolver.Resolve(ctx, "Asha", "Menon", "Cardiology")
		require.Error(t, err)
		assert.Nil(t, resolution)
	})
}
