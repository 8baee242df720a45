package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nonsonwune/canvas_grades/canvas"
	"github.com/nonsonwune/canvas_grades/config"
	"github.com/nonsonwune/canvas_grades/importer"
	"github.com/nonsonwune/canvas_grades/merger"
	"github.com/nonsonwune/canvas_grades/models"
	"github.com/nonsonwune/canvas_grades/report"
)

const (
	envConfig  = "CANVAS_GRADES_CONFIG"
	envNoColor = "CANVAS_GRADES_NO_COLOR"
)

var errConfigRequired = errors.New(`required flag "config" not set`)

func init() {
	log.SetFlags(0)

	// .env is optional here
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv(envNoColor) != "" {
		report.DisableColor()
	}
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		report.NewPrinter(cmd.OutOrStdout()).Fail("%v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "canvas-grades --config <path>",
		Short:         "Convert raw grade files to Canvas approved CSVs!",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv(envConfig)
			}
			if configPath == "" {
				return errConfigRequired
			}
			return run(configPath, report.NewPrinter(cmd.OutOrStdout()))
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "",
		"Path to JSON configuration file (e.g. config.json). Falls back to $"+envConfig+".")

	return cmd
}

// run converts one assignment. Nothing is written unless every input parsed.
func run(configPath string, p *report.Printer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var partners *models.PartnerRelation
	if cfg.HasPartners() {
		result, err := importer.LoadPartners(cfg.PartnersFile, cfg.PartnerColumns)
		if err != nil {
			return err
		}
		log.Printf("Loaded %d partner declarations from %s", result.Partners.Len(), cfg.PartnersFile)
		p.ImportSummary("Partners", result.Stats)
		p.AsymmetricPartners(result.Asymmetric)
		partners = result.Partners
	}

	grades, err := importer.LoadGrades(cfg.GradesFile)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d grades from %s", grades.Scores.Len(), cfg.GradesFile)
	p.ImportSummary("Grades", grades.Stats)

	merged, mergeReport := merger.Merge(grades.Scores, partners)
	p.MergeSummary(mergeReport)

	if err := canvas.WriteFile(cfg.OutputFile, cfg.AssignmentName, cfg.PointsPossible, merged); err != nil {
		return fmt.Errorf("%s: %w", cfg.OutputFile, err)
	}
	p.Success("Wrote %d students for %q to %s", merged.Len(), cfg.AssignmentName, cfg.OutputFile)
	return nil
}
