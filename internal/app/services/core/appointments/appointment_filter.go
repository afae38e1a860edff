package appointments

import (
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildAppointmentFilter translates the sparse admin query into a single
// conjunctive bson filter. Semantics:
//   - status: exact match, "All" means unconstrained
//   - appointment_date, department: exact match on the raw string
//   - doctor: full name split on the first space into first/last sub-matches;
//     a multi-word last name only matches on its first token
//   - hasVisited: boolean match on the strings "true"/"false", "All" means
//     unconstrained
//   - patientName: case-insensitive substring match against first OR last name
func buildAppointmentFilter(query *requests.AppointmentQuery) bson.M {
	filter := bson.M{}
	if query == nil {
		return filter
	}

	if query.Status != "" && query.Status != constvars.FilterAll {
		filter["status"] = query.Status
	}

	if query.AppointmentDate != "" {
		filter["appointment_date"] = query.AppointmentDate
	}

	if query.Doctor != "" {
		parts := strings.Split(query.Doctor, " ")
		filter["doctor.firstName"] = parts[0]
		if len(parts) > 1 && parts[1] != "" {
			// Only the first token of the last name participates; multi-word
			// last names match partially.
			filter["doctor.lastName"] = parts[1]
		}
	}

	if query.Department != "" {
		filter["department"] = query.Department
	}

	if query.HasVisited != "" && query.HasVisited != constvars.FilterAll {
		filter["hasVisited"] = query.HasVisited == "true"
	}

	if query.PatientName != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query.PatientName), Options: "i"}
		filter["$or"] = []bson.M{
			{"firstName": pattern},
			{"lastName": pattern},
		}
	}

	return filter
}
