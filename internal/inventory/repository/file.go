// Package repository provides the storage-slot adapters: a JSON file on
// disk, a single redis key, and an in-memory fake for tests. All three hold
// the same payload, a serialized array of lots with ISO-8601 date fields.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agrovia/kiosk-service/internal/inventory"
	"github.com/agrovia/kiosk-service/internal/model"
)

type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Load(ctx context.Context) ([]model.Lot, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, inventory.ErrSlotMissing
	}
	if err != nil {
		return nil, fmt.Errorf("read inventory slot %s: %w", r.path, err)
	}

	var lots []model.Lot
	if err := json.Unmarshal(data, &lots); err != nil {
		return nil, fmt.Errorf("parse inventory slot %s: %w", r.path, err)
	}
	return lots, nil
}

func (r *FileRepository) Save(ctx context.Context, lots []model.Lot) error {
	data, err := json.MarshalIndent(lots, "", "  ")
	if err != nil {
		return fmt.Errorf("encode inventory slot: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create slot directory: %w", err)
		}
	}

	// Write-then-rename so a failed write never truncates the previous slot.
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write inventory slot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace inventory slot: %w", err)
	}
	return nil
}
