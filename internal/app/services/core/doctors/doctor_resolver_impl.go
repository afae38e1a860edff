package doctors

import (
	"context"
	"hospicare-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type doctorResolver struct {
	DoctorRepository DoctorRepository
	Log              *zap.Logger
}

func NewDoctorResolver(doctorRepository DoctorRepository, logger *zap.Logger) DoctorResolver {
	return &doctorResolver{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

// Resolve maps a (first name, last name, department) triple to exactly one
// doctor. Results are never cached: the workflow resolves once before issuing
// a payment order and once again before confirmation, and the two lookups
// must each see the current state of the user-management store.
func (r *doctorResolver) Resolve(ctx context.Context, firstName, lastName, department string) (*Resolution, error) {
	matches, err := r.DoctorRepository.FindDoctors(ctx, firstName, lastName, department)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return &Resolution{Outcome: ResolutionNotFound}, nil
	case 1:
		return &Resolution{Outcome: ResolutionFound, Doctor: &matches[0]}, nil
	default:
		r.Log.Warn("doctorResolver.Resolve multiple active doctors share a name within one department",
			zap.String(constvars.LoggingDepartmentKey, department),
			zap.Int("matches", len(matches)),
		)
		return &Resolution{Outcome: ResolutionConflict}, nil
	}
}
