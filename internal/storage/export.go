package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/heatrod/internal/thermal"
)

type ExportData struct {
	Material  string             `json:"material"`
	Nodes     int                `json:"nodes"`
	Dx        float64            `json:"dx"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Steps     int                `json:"steps"`
	Times     []float64          `json:"times"`
	Positions []float64          `json:"positions"`
	Temps     [][]float64        `json:"temps"`
	Metrics   map[string]float64 `json:"metrics"`
}

func buildExport(meta *RunMetadata, field *thermal.Field) ExportData {
	data := ExportData{
		Material:  meta.Material,
		Nodes:     meta.Nodes,
		Dx:        meta.Dx,
		Dt:        meta.Dt,
		Duration:  meta.Duration,
		Steps:     field.Steps(),
		Times:     field.Times,
		Positions: field.Positions,
		Temps:     make([][]float64, field.Steps()),
		Metrics:   meta.Metrics,
	}
	for i, row := range field.Temps {
		data.Temps[i] = row
	}
	return data
}

func ExportJSON(w io.Writer, meta *RunMetadata, field *thermal.Field) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildExport(meta, field))
}

func ExportJSONFile(path string, meta *RunMetadata, field *thermal.Field) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, meta, field)
}
