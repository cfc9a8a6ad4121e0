package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	const sheet = "Sites"
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	return f
}

func TestReadSites(t *testing.T) {
	f := buildWorkbook(t, [][]interface{}{
		{"id", "external", "address", "zipcode", "city", "lat", "lng", "status"},
		{"S1", "EXT-1", "Unter den Linden 1", "10117", "Berlin", "52.5170", "13.3889", "active"},
		{"S2", "EXT-2", "Marienplatz 8", "80331", "München", "48,1351", "11,5820", "active"},
	})

	sites, err := ReadSites(f, "Sites")

	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, "S1", sites[0].SiteID)
	assert.Equal(t, 52.5170, sites[0].Latitude)
	// Decimal commas are tolerated.
	assert.Equal(t, 48.1351, sites[1].Latitude)
	assert.Equal(t, 11.5820, sites[1].Longitude)
	assert.Equal(t, "active", sites[1].Status)
}

func TestReadSites_SkipsUnusableRows(t *testing.T) {
	f := buildWorkbook(t, [][]interface{}{
		{"id", "external", "address", "zipcode", "city", "lat", "lng", "status"},
		{"S1", "EXT-1", "Somewhere 1", "10117", "Berlin", "", "13.3889", "active"},
		{"S2", "EXT-2", "Somewhere 2", "10117", "Berlin", "not-a-number", "13.3889", "active"},
		{"", "EXT-3", "Somewhere 3", "10117", "Berlin", "52.0", "13.0", "active"},
		{"S4", "EXT-4", "Somewhere 4", "10117", "Berlin", "52.0", "13.0", "active"},
	})

	sites, err := ReadSites(f, "Sites")

	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, "S4", sites[0].SiteID)
}

func TestReadSites_MissingSheet(t *testing.T) {
	f := excelize.NewFile()

	_, err := ReadSites(f, "Nope")

	assert.Error(t, err)
}
