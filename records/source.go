package records

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source produces the raw records for one entity, model and year. The
// integrator treats this as its only asynchronous boundary; implementations
// own their timeout policy.
type Source interface {
	Fetch(ctx context.Context, source, model, entityID string, year int) ([]Record, error)
}

// FileSource reads pre-fetched datasets from a directory. A dataset
// "gdn/fs/010002:2022" is looked up as gdn_fs_010002_2022.csv, falling back
// to the .json spelling. Both historical field shapes are accepted.
type FileSource struct {
	// Dir is the directory holding the dataset files.
	Dir string
}

// NewFileSource creates a file-backed record source rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context, source, model, entityID string, year int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := fmt.Sprintf("%s_%s_%s_%d", source, model, entityID, year)
	csvPath := filepath.Join(s.Dir, base+".csv")
	if _, err := os.Stat(csvPath); err == nil {
		return s.fetchCSV(csvPath)
	}

	jsonPath := filepath.Join(s.Dir, base+".json")
	if _, err := os.Stat(jsonPath); err == nil {
		return s.fetchJSON(jsonPath)
	}

	return nil, fmt.Errorf("no dataset file for %s/%s/%s:%d in %s", source, model, entityID, year, s.Dir)
}

func (s *FileSource) fetchCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeCSV(f)
}

func (s *FileSource) fetchJSON(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeJSON(f)
}

// DecodeCSV reads normalized records from CSV data. The header row decides
// the column mapping; unknown columns are ignored.
func DecodeCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(row []string, names ...string) string {
		for _, name := range names {
			if i, ok := columns[name]; ok && i < len(row) {
				return row[i]
			}
		}
		return ""
	}

	var out []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		raw := rawRecord{
			Arten: cell(row, "arten", "konto"),
			Funk:  cell(row, "funk", "funktion"),
			Jahr:  cell(row, "jahr"),
			Value: cell(row, "value", "betrag"),
			Dim:   cell(row, "dim"),
			Unit:  cell(row, "unit"),
		}
		out = append(out, raw.normalize())
	}
	return out, nil
}

// DecodeJSON reads normalized records from a JSON array. Field values may
// arrive as numbers or strings; both are accepted.
func DecodeJSON(r io.Reader) ([]Record, error) {
	var rows []jsonRecord
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode JSON records: %w", err)
	}

	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		raw := rawRecord{
			Arten:    string(row.Arten),
			Konto:    string(row.Konto),
			Funk:     string(row.Funk),
			Funktion: string(row.Funktion),
			Jahr:     string(row.Jahr),
			Value:    string(row.Value),
			Betrag:   string(row.Betrag),
			Dim:      string(row.Dim),
			Unit:     string(row.Unit),
		}
		out = append(out, raw.normalize())
	}
	return out, nil
}

// jsonRecord mirrors rawRecord with tolerant field decoding.
type jsonRecord struct {
	Arten    flexString `json:"arten"`
	Konto    flexString `json:"konto"`
	Funk     flexString `json:"funk"`
	Funktion flexString `json:"funktion"`
	Jahr     flexString `json:"jahr"`
	Value    flexString `json:"value"`
	Betrag   flexString `json:"betrag"`
	Dim      flexString `json:"dim"`
	Unit     flexString `json:"unit"`
}

// flexString decodes JSON strings, numbers and null into a string.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = flexString(num.String())
	return nil
}
