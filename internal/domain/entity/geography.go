package entity

// Country is a row of the geographic reference data, loaded from CSV.
type Country struct {
	ID   int64
	Name string
}

// Department is an administrative division of a Country.
type Department struct {
	ID        int64
	Name      string
	CountryID int64
}

// Municipality is an administrative division of a Department.
type Municipality struct {
	ID           int64
	Name         string
	DepartmentID int64
}
