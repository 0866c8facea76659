// Package storage persists finished runs: one directory per run with
// metadata.json and the field as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/heatrod/internal/thermal"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Material  string             `json:"material"`
	Timestamp time.Time          `json:"timestamp"`
	Nodes     int                `json:"nodes"`
	Length    float64            `json:"length"`
	Duration  float64            `json:"duration"`
	LeftTemp  float64            `json:"left_temp"`
	RightTemp float64            `json:"right_temp"`
	Dx        float64            `json:"dx"`
	Dt        float64            `json:"dt"`
	Th        float64            `json:"th"`
	HasPulse  bool               `json:"has_pulse"`
	ShapeKind string             `json:"shape_kind,omitempty"`
	Area      float64            `json:"area,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one run directory and returns its ID.
func (s *Store) Save(meta RunMetadata, field *thermal.Field) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Material, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if field.Steps() == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := range field.Temps[0] {
		header = append(header, fmt.Sprintf("node%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, row := range field.Temps {
		record := []string{strconv.FormatFloat(field.Times[i], 'f', 6, 64)}
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadField reads a saved field back into memory. Positions and Th are
// rebuilt from the run metadata.
func (s *Store) LoadField(runID string) (*thermal.Field, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	field := &thermal.Field{Th: meta.Th}
	if meta.Nodes > 0 {
		dx := meta.Length / float64(meta.Nodes)
		field.Positions = make([]float64, meta.Nodes)
		for i := range field.Positions {
			field.Positions[i] = (float64(i) + 0.5) * dx
		}
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		row := make(thermal.Row, 0, len(record)-1)
		for _, cell := range record[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: bad cell in %s: %w", runID, err)
			}
			row = append(row, v)
		}
		field.Times = append(field.Times, t)
		field.Temps = append(field.Temps, row)
	}

	return field, nil
}
