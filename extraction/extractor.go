package extraction

import (
	"context"
	"io"
)

// SheetData is what the extraction service reads off a photographed
// bracket sheet. The player order is the sheet order, used for display
// only; it carries no ranking meaning.
type SheetData struct {
	Title        string   `json:"title"`
	TotalMatches int      `json:"total_matches"`
	Players      []string `json:"players"`
}

// Extractor turns a score sheet image into the initial tournament shape.
// The service behind it is an opaque oracle; only the output shape is
// relied on.
type Extractor interface {
	Extract(ctx context.Context, contentType string, image io.Reader) (*SheetData, error)
}
