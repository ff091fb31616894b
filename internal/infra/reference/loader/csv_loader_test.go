package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func writeValidDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "pais.csv", "id;nombre\n1;Colombia\n2;Panama\n")
	writeFile(t, dir, "departamentos.csv", "id;nombre;pais_id\n10;Antioquia;1\n")
	writeFile(t, dir, "municipios.csv", "id;nombre;departamento_id\n100;Medellin;10\n101;Envigado;10\n")

	return dir
}

func TestCSVLoader_Load(t *testing.T) {
	dir := writeValidDataset(t)

	data, err := NewCSVLoader(dir).Load()
	require.NoError(t, err)

	require.Len(t, data.Countries, 2)
	assert.Equal(t, int64(1), data.Countries[0].ID)
	assert.Equal(t, "Colombia", data.Countries[0].Name)

	require.Len(t, data.Departments, 1)
	assert.Equal(t, int64(1), data.Departments[0].CountryID)

	require.Len(t, data.Municipalities, 2)
	assert.Equal(t, int64(10), data.Municipalities[1].DepartmentID)
}

func TestCSVLoader_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pais.csv", "id;nombre\n1;Colombia\n")
	// departamentos.csv intentionally absent.

	_, err := NewCSVLoader(dir).Load()
	assert.Error(t, err)
}

func TestCSVLoader_RejectsBadID(t *testing.T) {
	dir := writeValidDataset(t)
	writeFile(t, dir, "pais.csv", "id;nombre\nabc;Colombia\n")

	_, err := NewCSVLoader(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pais.csv")
}

func TestCSVLoader_RejectsShortRow(t *testing.T) {
	dir := writeValidDataset(t)
	writeFile(t, dir, "municipios.csv", "id;nombre;departamento_id\n100\n")

	_, err := NewCSVLoader(dir).Load()
	assert.Error(t, err)
}
