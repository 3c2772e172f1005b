package garden

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"digital-garden/backend/internal/assemble"
)

// FileBlocksLoader reads the blocks dataset from a JSON file on disk.
type FileBlocksLoader struct {
	Path string
}

// Load implements BlocksLoader.
func (l FileBlocksLoader) Load(ctx context.Context) (*assemble.BlocksDataset, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blocks dataset: %w", err)
	}
	var ds assemble.BlocksDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse blocks dataset: %w", err)
	}
	return &ds, nil
}
