package entity

import "time"

// Registrant is a person registered against the geographic hierarchy.
// The three reference ids must point at existing rows in the country,
// department and municipality tables.
type Registrant struct {
	ID             int64     // Surrogate key assigned by the store on creation.
	Name           string    // Full name; required.
	Phone          string    // Contact phone; required.
	Address        string    // Free-form street address.
	CountryID      int64     // Reference to a Country.
	DepartmentID   int64     // Reference to a Department.
	MunicipalityID int64     // Reference to a Municipality.
	CreatedAt      time.Time // Timestamp of when this record was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}
