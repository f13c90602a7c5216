package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agritrack/agritrack-server/internal/config"
	"github.com/agritrack/agritrack-server/internal/database"
	"github.com/agritrack/agritrack-server/internal/models"
	"github.com/agritrack/agritrack-server/internal/services"
	"github.com/agritrack/agritrack-server/internal/store"
)

type RecordImport struct {
	WorkerName string  `json:"worker_name"`
	Weight     float64 `json:"weight"`
	Date       string  `json:"date"`
}

type HarvestImport struct {
	Name      string         `json:"name"`
	StartDate string         `json:"start_date"`
	Workers   []string       `json:"workers"`
	Records   []RecordImport `json:"records"`
}

var (
	importFile  string
	skipInvalid bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import harvests and weight records from a JSON file",
	Long: `Import reads a JSON array of harvests, each with an optional worker
roster and weight records, and inserts them through the same storage gateway
the server uses. Records with a blank worker name or a non-positive weight
are rejected; pass --skip-invalid to drop them and continue.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport()
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "JSON file to import (required)")
	importCmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "skip invalid records instead of aborting")
	importCmd.MarkFlagRequired("file")
}

func runImport() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var imports []HarvestImport
	if err := json.Unmarshal(data, &imports); err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	gateway := store.NewGateway(db)

	imported, skipped := 0, 0
	for _, entry := range imports {
		if entry.Name == "" {
			if !skipInvalid {
				return errors.New("harvest with empty name in import file")
			}
			skipped++
			continue
		}

		harvest := &models.Harvest{
			Name:      entry.Name,
			StartDate: entry.StartDate,
			Workers:   services.ParseRoster(strings.Join(entry.Workers, "\n")),
		}
		if err := gateway.InsertHarvest(harvest); err != nil {
			return fmt.Errorf("failed to insert harvest %q: %w", entry.Name, err)
		}

		for _, rec := range entry.Records {
			if rec.WorkerName == "" || rec.Weight <= 0 || rec.Date == "" {
				if !skipInvalid {
					return fmt.Errorf("invalid record for harvest %q: %+v", entry.Name, rec)
				}
				skipped++
				continue
			}
			record := &models.WeightRecord{
				HarvestID:  harvest.ID,
				WorkerName: rec.WorkerName,
				Weight:     rec.Weight,
				Date:       rec.Date,
			}
			if err := gateway.InsertWeightRecord(record); err != nil {
				return fmt.Errorf("failed to insert record for %q: %w", entry.Name, err)
			}
			imported++
		}
	}

	log.Printf("Import complete: %d harvests, %d records, %d skipped", len(imports), imported, skipped)
	return nil
}
