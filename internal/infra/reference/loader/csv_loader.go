// Package loader reads the geographic reference tables from CSV files.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"userregistry/internal/domain/entity"
)

// Source file names inside the reference-data directory.
// The files are semicolon-delimited, with a header row.
const (
	countriesFile      = "pais.csv"
	departmentsFile    = "departamentos.csv"
	municipalitiesFile = "municipios.csv"
)

// GeographyData holds all loaded reference rows.
type GeographyData struct {
	Countries      []*entity.Country
	Departments    []*entity.Department
	Municipalities []*entity.Municipality
}

// CSVLoader handles loading of geographic reference data from CSV files.
type CSVLoader struct {
	dataDir string
}

// NewCSVLoader creates a new CSV loader for the given data directory.
func NewCSVLoader(dataDir string) *CSVLoader {
	return &CSVLoader{dataDir: dataDir}
}

// Load loads all reference data from the CSV files.
func (l *CSVLoader) Load() (*GeographyData, error) {
	countries, err := l.LoadCountries()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	departments, err := l.LoadDepartments()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	municipalities, err := l.LoadMunicipalities()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &GeographyData{
		Countries:      countries,
		Departments:    departments,
		Municipalities: municipalities,
	}, nil
}

// LoadCountries loads countries from pais.csv.
// Expected CSV format: id;name
func (l *CSVLoader) LoadCountries() ([]*entity.Country, error) {
	var countries []*entity.Country
	err := l.readFile(countriesFile, 2, func(record []string, lineNum int) error {
		id, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return errors.Errorf("invalid %s id at line %d: %q", countriesFile, lineNum, record[0])
		}
		countries = append(countries, &entity.Country{ID: id, Name: record[1]})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return countries, nil
}

// LoadDepartments loads departments from departamentos.csv.
// Expected CSV format: id;name;country_id
func (l *CSVLoader) LoadDepartments() ([]*entity.Department, error) {
	var departments []*entity.Department
	err := l.readFile(departmentsFile, 3, func(record []string, lineNum int) error {
		id, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return errors.Errorf("invalid %s id at line %d: %q", departmentsFile, lineNum, record[0])
		}
		countryID, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return errors.Errorf("invalid %s country id at line %d: %q", departmentsFile, lineNum, record[2])
		}
		departments = append(departments, &entity.Department{ID: id, Name: record[1], CountryID: countryID})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return departments, nil
}

// LoadMunicipalities loads municipalities from municipios.csv.
// Expected CSV format: id;name;department_id
func (l *CSVLoader) LoadMunicipalities() ([]*entity.Municipality, error) {
	var municipalities []*entity.Municipality
	err := l.readFile(municipalitiesFile, 3, func(record []string, lineNum int) error {
		id, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return errors.Errorf("invalid %s id at line %d: %q", municipalitiesFile, lineNum, record[0])
		}
		departmentID, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return errors.Errorf("invalid %s department id at line %d: %q", municipalitiesFile, lineNum, record[2])
		}
		municipalities = append(municipalities, &entity.Municipality{ID: id, Name: record[1], DepartmentID: departmentID})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return municipalities, nil
}

// readFile walks one semicolon-delimited CSV file, skipping the header row.
func (l *CSVLoader) readFile(name string, minColumns int, handle func(record []string, lineNum int) error) error {
	path := filepath.Join(l.dataDir, name)
	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return errors.WithStack(err)
	}

	lineNum := 1 // Start at 1 because we skipped header
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return errors.WithStack(readErr)
		}
		lineNum++

		if len(record) < minColumns {
			return errors.Errorf("invalid %s format at line %d: expected %d columns, got %d", name, lineNum, minColumns, len(record))
		}

		if err := handle(record, lineNum); err != nil {
			return err
		}
	}

	return nil
}
