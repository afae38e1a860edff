package doctors

import (
	"context"
	"hospicare-service/internal/app/models"
)

type DoctorRepository interface {
	// FindDoctors returns every active doctor whose first name, last name and
	// department all match exactly (case-sensitive).
	FindDoctors(ctx context.Context, firstName, lastName, department string) ([]models.User, error)
}

// ResolutionOutcome tags the result of a doctor lookup. Conflict means the
// same name pair is active twice in one department, a data-quality condition
// this service refuses to disambiguate on its own.
type ResolutionOutcome int

const (
	ResolutionFound ResolutionOutcome = iota
	ResolutionNotFound
	ResolutionConflict
)

type Resolution struct {
	Outcome ResolutionOutcome
	Doctor  *models.User
}

type DoctorResolver interface {
	Resolve(ctx context.Context, firstName, lastName, department string) (*Resolution, error)
}
