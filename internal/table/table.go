package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Column names of the camp spreadsheet. Fields are always accessed by name,
// never by position.
const (
	FieldOrganization = "Organization"
	FieldCampName     = "Camp Name"
	FieldWebpage      = "Webpage"
	FieldDescription  = "Camp Description"
	FieldCity         = "City"
	FieldLocation     = "Location"
	FieldCost         = "Cost"
	FieldNotes        = "Notes"
	FieldRegistration = "Registration"
	FieldStartGrade   = "Start Grade"
	FieldEndGrade     = "End Grade"
	FieldStartAge     = "Start Age"
	FieldEndAge       = "End Age"
	FieldStartTime    = "Start Time"
	FieldEndTime      = "End Time"
	FieldStartDate    = "Start Date"
	FieldEndDate      = "End Date"
	FieldPreAfterCare = "Pre/After Care"
)

// Record is one row of the table, keyed by header name.
type Record map[string]string

// Get returns the trimmed value of a field. Missing and blank are equivalent.
func (r Record) Get(field string) string {
	return strings.TrimSpace(r[field])
}

// IsBlank reports whether a field holds no usable value.
func (r Record) IsBlank(field string) bool {
	return r.Get(field) == ""
}

// Set stores a field value verbatim.
func (r Record) Set(field, value string) {
	r[field] = value
}

// Table holds the full record set plus the original header order.
type Table struct {
	Header  []string
	Records []Record
}

// Load reads a CSV file into a Table. A UTF-8 byte-order mark on the first
// header cell is stripped. Rows shorter than the header are padded with
// blanks so every record exposes every field.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading table: %s has no header row", path)
	}

	header := rows[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	t := &Table{
		Header:  header,
		Records: make([]Record, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// Save writes the table back to disk with the original header order and all
// rows in their original positions. No byte-order mark is written.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	row := make([]string, len(t.Header))
	for _, rec := range t.Records {
		for i, name := range t.Header {
			row[i] = rec[name]
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}
