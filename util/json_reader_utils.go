package util

import (
	"encoding/json"
	"fmt"
	"os"

	"booking-widget/models"
)

// ReadSearchResultFromJSON loads a rooms/find response (either shape) from JSON on disk.
func ReadSearchResultFromJSON(filePath string) (*models.SearchResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.SearchResult
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SearchResult: %w", err)
	}
	return &resp, nil
}
