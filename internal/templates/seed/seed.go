// Package seed loads template fixtures from a YAML file into a repository.
// Used at startup to give the in-memory store (or a fresh database)
// deterministic data.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"templates_backend/internal/templates/repository"
	"templates_backend/platform/apperr"
	"templates_backend/platform/logger"
)

// File is the on-disk fixture format.
type File struct {
	Products []ProductSeed `yaml:"products"`
	Models   []ModelSeed   `yaml:"models"`
	Rates    []RateSeed    `yaml:"rates"`
}

type ProductSeed struct {
	Name string `yaml:"name"`
}

type ModelSeed struct {
	Name   string `yaml:"name"`
	Option string `yaml:"option"`
}

type RateSeed struct {
	Type        string `yaml:"type"`
	ComponentID int64  `yaml:"componentId"`
	Option      string `yaml:"option"`
}

// Load parses the fixture file at path.
func Load(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	return file, nil
}

// Apply inserts the fixtures through the writer. Records that already exist
// are skipped, so applying the same file twice is safe.
func Apply(ctx context.Context, writer repository.Writer, file File, log *logger.Logger) error {
	for _, item := range file.Products {
		if _, err := writer.CreateProduct(ctx, repository.CreateProductParams{Name: item.Name}); err != nil {
			if apperr.Is(err, apperr.KindConflict) {
				continue
			}
			return fmt.Errorf("seed product %q: %w", item.Name, err)
		}
	}

	for _, item := range file.Models {
		params := repository.CreateModelParams{Name: item.Name, Option: item.Option}
		if _, err := writer.CreateModel(ctx, params); err != nil {
			if apperr.Is(err, apperr.KindConflict) {
				continue
			}
			return fmt.Errorf("seed model %q/%q: %w", item.Name, item.Option, err)
		}
	}

	for _, item := range file.Rates {
		params := repository.CreateRateParams{Type: item.Type, ComponentID: item.ComponentID, Option: item.Option}
		if _, err := writer.CreateRate(ctx, params); err != nil {
			if apperr.Is(err, apperr.KindConflict) {
				continue
			}
			return fmt.Errorf("seed rate %q: %w", item.Type, err)
		}
	}

	if log != nil {
		log.Info("seed fixtures applied",
			"products", len(file.Products),
			"models", len(file.Models),
			"rates", len(file.Rates),
		)
	}
	return nil
}
