package models

import "fmt"

// Department is the closed set of medical specialties. The patient-facing
// form and the fee table must agree on this enumeration; ValidateFeeTable is
// called at startup to keep the two from diverging.
type Department string

const (
	DepartmentPediatrics      Department = "Pediatrics"
	DepartmentOrthopedics     Department = "Orthopedics"
	DepartmentCardiology      Department = "Cardiology"
	DepartmentNeurology       Department = "Neurology"
	DepartmentOncology        Department = "Oncology"
	DepartmentRadiology       Department = "Radiology"
	DepartmentPhysicalTherapy Department = "Physical Therapy"
	DepartmentDermatology     Department = "Dermatology"
	DepartmentENT             Department = "ENT"
)

func Departments() []Department {
	return []Department{
		DepartmentPediatrics,
		DepartmentOrthopedics,
		DepartmentCardiology,
		DepartmentNeurology,
		DepartmentOncology,
		DepartmentRadiology,
		DepartmentPhysicalTherapy,
		DepartmentDermatology,
		DepartmentENT,
	}
}

// departmentFees holds consultation fees in major currency units.
var departmentFees = map[Department]int{
	DepartmentPediatrics:      500,
	DepartmentOrthopedics:     700,
	DepartmentCardiology:      1000,
	DepartmentNeurology:       1200,
	DepartmentOncology:        1500,
	DepartmentRadiology:       800,
	DepartmentPhysicalTherapy: 600,
	DepartmentDermatology:     750,
	DepartmentENT:             650,
}

// FeeFor returns the consultation fee for a department in major currency
// units. The second return value reports whether the department is known.
func FeeFor(department string) (int, bool) {
	fee, ok := departmentFees[Department(department)]
	return fee, ok
}

// ValidateFeeTable checks that the fee table and the department enumeration
// cover exactly the same set and that every fee is positive.
func ValidateFeeTable() error {
	if len(departmentFees) != len(Departments()) {
		return fmt.Errorf("fee table has %d entries, department enumeration has %d", len(departmentFees), len(Departments()))
	}
	for _, department := range Departments() {
		fee, ok := departmentFees[department]
		if !ok {
			return fmt.Errorf("department %q has no fee table entry", department)
		}
		if fee <= 0 {
			return fmt.Errorf("department %q has non-positive fee %d", department, fee)
		}
	}
	return nil
}
