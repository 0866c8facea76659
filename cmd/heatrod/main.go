package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/heatrod/internal/config"
	"github.com/san-kum/heatrod/internal/geometry"
	"github.com/san-kum/heatrod/internal/material"
	"github.com/san-kum/heatrod/internal/metrics"
	"github.com/san-kum/heatrod/internal/render"
	"github.com/san-kum/heatrod/internal/storage"
	"github.com/san-kum/heatrod/internal/thermal"
	"github.com/san-kum/heatrod/internal/viz"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	dbPath  string

	materialName string
	nodes        int
	length       float64
	duration     float64
	leftTemp     float64
	rightTemp    float64
	pulseTemp    float64
	pulseLoc     float64
	pulseWidth   float64
	shapeKind    string
	shapeLengths []float64
	output       string
	outDir       string
	configFile   string
	preset       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heatrod",
		Short: "transient 1D heat conduction lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heatrod", "data directory")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "thermal.db", "property database path")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a conduction simulation",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "run and write the animated GIF",
		RunE:  runGIF,
	}
	addRunFlags(gifCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list the thermal property table",
		RunE:  listMaterials,
	}

	areaCmd := &cobra.Command{
		Use:   "area [shape] [lengths...]",
		Short: "cross-sectional area for a shape profile",
		Args:  cobra.MinimumNArgs(2),
		RunE:  shapeArea,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved field to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved field to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, gifCmd, listCmd, plotCmd, materialsCmd,
		areaCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&materialName, "material", config.DefaultMaterial, "rod material")
	cmd.Flags().IntVar(&nodes, "nodes", config.DefaultNodes, "number of spatial cells")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "rod length (m)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated duration (s)")
	cmd.Flags().Float64Var(&leftTemp, "left", config.DefaultBoundary, "left boundary temperature (C)")
	cmd.Flags().Float64Var(&rightTemp, "right", config.DefaultBoundary, "right boundary temperature (C)")
	cmd.Flags().Float64Var(&pulseTemp, "pulse-temp", 0, "hat pulse temperature (C)")
	cmd.Flags().Float64Var(&pulseLoc, "pulse-location", 0, "hat pulse center (m from left)")
	cmd.Flags().Float64Var(&pulseWidth, "pulse-width", 0, "hat pulse plateau width (nodes)")
	cmd.Flags().StringVar(&shapeKind, "shape", "", "cross-section shape (informational)")
	cmd.Flags().Float64SliceVar(&shapeLengths, "shape-lengths", nil, "cross-section lengths (m)")
	cmd.Flags().StringVar(&output, "out", "", "consumer: plot, live, gif, svg or empty for raw field")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory for rendered artifacts")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig merges preset, config file and CLI flags, flags winning.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("material") {
		cfg.Material = materialName
	}
	if cmd.Flags().Changed("nodes") {
		cfg.Nodes = nodes
	}
	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("left") {
		cfg.LeftTemp = leftTemp
	}
	if cmd.Flags().Changed("right") {
		cfg.RightTemp = rightTemp
	}
	if cmd.Flags().Changed("pulse-temp") {
		cfg.Pulse.Temp = &pulseTemp
	}
	if cmd.Flags().Changed("pulse-location") {
		cfg.Pulse.Location = &pulseLoc
	}
	if cmd.Flags().Changed("pulse-width") {
		cfg.Pulse.Width = &pulseWidth
	}
	if cmd.Flags().Changed("shape") {
		cfg.Shape.Kind = shapeKind
	}
	if cmd.Flags().Changed("shape-lengths") {
		cfg.Shape.Lengths = shapeLengths
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = output
	}
	return cfg, nil
}

// prepare resolves material properties and builds a solver from cfg.
func prepare(ctx context.Context, cfg *config.Config) (*thermal.Solver, thermal.MaterialProperties, error) {
	store, err := material.Open(dbPath)
	if err != nil {
		return nil, thermal.MaterialProperties{}, err
	}
	defer store.Close()

	props, err := store.Lookup(ctx, cfg.Material)
	if err != nil {
		return nil, thermal.MaterialProperties{}, err
	}

	rod, err := cfg.RodConfig()
	if err != nil {
		return nil, thermal.MaterialProperties{}, err
	}

	sol, err := thermal.Prepare(rod, props)
	if err != nil {
		return nil, thermal.MaterialProperties{}, err
	}
	return sol, props, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	return simulate(cfg)
}

// gifRunConfig is the run configuration with the GIF consumer forced,
// overriding whatever the merged config selected.
func gifRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}
	cfg.Output = "gif"
	return cfg, nil
}

func runGIF(cmd *cobra.Command, args []string) error {
	cfg, err := gifRunConfig(cmd)
	if err != nil {
		return err
	}
	return simulate(cfg)
}

func simulate(cfg *config.Config) error {
	ctx := context.Background()
	sol, props, err := prepare(ctx, cfg)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"material": cfg.Material,
		"nodes":    cfg.Nodes,
		"dx":       sol.Dx(),
		"dt":       sol.Dt(),
		"steps":    sol.Steps(),
	}).Info("prepared run")

	start := time.Now()
	field, err := sol.Solve(ctx)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Info("completed stepping")

	meta := storage.RunMetadata{
		Material:  cfg.Material,
		Nodes:     cfg.Nodes,
		Length:    cfg.Length,
		Duration:  cfg.Duration,
		LeftTemp:  cfg.LeftTemp,
		RightTemp: cfg.RightTemp,
		Dx:        sol.Dx(),
		Dt:        sol.Dt(),
		Th:        field.Th,
		HasPulse:  cfg.Pulse.Complete(),
		Metrics:   metrics.Summarize(field, props, sol.Dx(), field.Th),
	}

	// Informational geometry; never part of the governing equation.
	if cfg.Shape.Kind != "" {
		area, err := geometry.Area(cfg.Shape.Kind, cfg.Shape.Lengths...)
		if err != nil {
			return err
		}
		meta.ShapeKind = cfg.Shape.Kind
		meta.Area = area
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(meta, field)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", field.Steps())
	fmt.Println("\nmetrics:")
	for name, val := range meta.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if cfg.Output == "" {
		return nil
	}
	if cfg.Output == "live" {
		m := viz.NewModel(sol, renderMeta(cfg))
		_, err := tea.NewProgram(m).Run()
		return err
	}
	consumer, err := render.New(cfg.Output)
	if err != nil {
		return err
	}
	return consumer.Consume(field, renderMeta(cfg))
}

func renderMeta(cfg *config.Config) render.Meta {
	return render.Meta{
		Material:  cfg.Material,
		LeftTemp:  cfg.LeftTemp,
		RightTemp: cfg.RightTemp,
		Length:    cfg.Length,
		HasPulse:  cfg.Pulse.Complete(),
		OutDir:    outDir,
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	sol, _, err := prepare(context.Background(), cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(sol, renderMeta(cfg))
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMATERIAL\tTIME\tNODES\tDURATION\tDT\tBOUNDARIES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0fs\t%.4fs\t%g/%g\n",
			run.ID,
			run.Material,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Nodes,
			run.Duration,
			run.Dt,
			run.LeftTemp, run.RightTemp,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	if field.Steps() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("material: %s\n", meta.Material)
	fmt.Printf("samples: %d\n\n", field.Steps())

	graph := asciigraph.Plot(field.Last(),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("final profile, t = %.1f s", field.Times[field.Steps()-1])),
	)
	fmt.Println(graph)
	return nil
}

func listMaterials(cmd *cobra.Command, args []string) error {
	store, err := material.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.All(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tCONDUCTIVITY\tDIFFUSIVITY\tSPEC.HEAT\tEFFUSIVITY\tDENSITY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\n",
			e.Name, e.Props.Conductivity, e.Props.Diffusivity,
			e.Props.SpecificHeat, e.Props.Effusivity, e.Props.Density)
	}
	return w.Flush()
}

func shapeArea(cmd *cobra.Command, args []string) error {
	lengths := make([]float64, 0, len(args)-1)
	for _, arg := range args[1:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad length %q: %w", arg, err)
		}
		lengths = append(lengths, v)
	}
	area, err := geometry.Area(args[0], lengths...)
	if err != nil {
		return err
	}
	fmt.Printf("%.6f\n", area)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	if field.Steps() == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range field.Temps[0] {
		header = append(header, fmt.Sprintf("node%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, row := range field.Temps {
		record := []string{strconv.FormatFloat(field.Times[i], 'f', 6, 64)}
		for _, val := range row {
			record = append(record, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, field)
}
