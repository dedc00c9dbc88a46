package testutil

import (
	"context"
	"sort"

	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

// CollectBatch consumes a batch stream and returns the items ordered by their input index.
// The first streamed error is returned as-is.
// This is a test helper and should not be used in production code.
func CollectBatch(ctx context.Context, stream <-chan models.StreamResult[models.BatchItem]) ([]models.BatchItem, error) {
	var items []models.BatchItem
	for {
		select {
		case result, ok := <-stream:
			if !ok {
				sort.Slice(items, func(i, j int) bool { return items[i].Index < items[j].Index })
				return items, nil
			}
			if result.Err != nil {
				return nil, result.Err
			}
			items = append(items, result.Value)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
