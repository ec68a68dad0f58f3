package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"financetracker/internal/backend"
	"financetracker/internal/config"
	"financetracker/internal/log"
)

func main() {
	exportPath := flag.String("export", "", "write a full data export to this file")
	importPath := flag.String("import", "", "merge a previously exported file into the database")
	flag.Parse()

	if (*exportPath == "") == (*importPath == "") {
		fmt.Fprintln(os.Stderr, "usage: backup -export <file> | -import <file>")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: log.ComponentBackend,
	})
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	ctx := context.Background()

	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateBackend(ctx, backend.Config{
		Type:         backend.BackendType(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
		RequestDelay: 0, // no simulated latency for batch work
	})
	if err != nil {
		logger.Error("Failed to initialize backend", log.FieldError, err)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	if *exportPath != "" {
		resp := result.Backend.ExportData(ctx)
		if !resp.Success {
			logger.Error("Export failed", "message", resp.Message)
			os.Exit(1)
		}
		raw, err := json.MarshalIndent(resp.Data, "", "  ")
		if err != nil {
			logger.Error("Failed to encode export", log.FieldError, err)
			os.Exit(1)
		}
		if err := os.WriteFile(*exportPath, raw, 0644); err != nil {
			logger.Error("Failed to write export file", log.FieldError, err, "path", *exportPath)
			os.Exit(1)
		}
		logger.Info("Export complete", "path", *exportPath)
		return
	}

	raw, err := os.ReadFile(*importPath)
	if err != nil {
		logger.Error("Failed to read import file", log.FieldError, err, "path", *importPath)
		os.Exit(1)
	}
	resp := result.Backend.ImportJSON(ctx, raw)
	if !resp.Success {
		logger.Error("Import failed", "message", resp.Message)
		os.Exit(1)
	}
	logger.Info("Import complete", "path", *importPath)
}
