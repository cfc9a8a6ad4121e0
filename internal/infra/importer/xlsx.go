package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SiteRow is one spreadsheet row ready to publish. JSON keys match the
// ingest worker's expected payload.
type SiteRow struct {
	SiteID     string  `json:"site_id"`
	ExternalID string  `json:"external_id"`
	Address    string  `json:"address"`
	Zipcode    string  `json:"zipcode"`
	City       string  `json:"city"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Status     string  `json:"status"`
}

// parseCoord tolerates decimal commas, which field spreadsheets often use.
func parseCoord(val string) (float64, error) {
	val = strings.TrimSpace(strings.ReplaceAll(val, ",", "."))
	if val == "" {
		return 0, fmt.Errorf("empty")
	}
	return strconv.ParseFloat(val, 64)
}

// ReadSites reads site records from the named sheet. Expected columns:
// A=id, B=external code, C=address, D=zipcode, E=city, F=lat, G=lng,
// H=status. The header row and rows with unparsable coordinates are
// skipped.
func ReadSites(f *excelize.File, sheetName string) ([]SiteRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var sites []SiteRow
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 7 {
			continue
		}

		lat, err1 := parseCoord(row[5])
		lng, err2 := parseCoord(row[6])
		if err1 != nil || err2 != nil {
			continue
		}

		s := SiteRow{
			SiteID:     row[0],
			ExternalID: row[1],
			Address:    row[2],
			Zipcode:    row[3],
			City:       row[4],
			Latitude:   lat,
			Longitude:  lng,
		}
		if len(row) > 7 {
			s.Status = row[7]
		}
		if s.SiteID == "" {
			continue
		}
		sites = append(sites, s)
	}
	return sites, nil
}
