package usecase

import "context"

// DataLoadOutput reports how many reference rows each table received.
type DataLoadOutput struct {
	Countries      int
	Departments    int
	Municipalities int
}

// DataLoadUsecase loads the geographic reference tables from the
// configured CSV directory. Loading is idempotent; rows are upserted
// by their CSV-assigned primary keys.
type DataLoadUsecase interface {
	LoadGeography(ctx context.Context) (*DataLoadOutput, error)
}
