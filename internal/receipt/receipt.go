// Package receipt extracts transaction data from receipt photos.
//
// The extraction itself is delegated to an external image-understanding
// model behind the Extractor interface, so the concrete provider can be
// swapped or stubbed in tests without touching calling code.
package receipt

import (
	"context"
	"regexp"
)

// FallbackCategory is offered to the model in addition to the user's
// own category names.
const FallbackCategory = "Other"

// Extraction is the structured result of parsing a receipt image.
// It is returned to the client exactly as the model produced it.
type Extraction struct {
	Name     string  `json:"name"`     // Merchant or transaction name
	Date     string  `json:"date"`     // Date in dd/mm/yyyy format
	Category string  `json:"category"` // One of the allowed category names
	Total    float64 `json:"total"`    // Receipt total
}

// Extractor asks an external model to read a receipt image.
//
// The categories are the names the model may choose from; FallbackCategory
// is always allowed in addition.
type Extractor interface {
	Extract(ctx context.Context, image []byte, categories []string) (Extraction, error)
}

var dataURLPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// StripDataURL removes a data-URL prefix from a base64 encoded image,
// if one is present.
func StripDataURL(image string) string {
	return dataURLPrefix.ReplaceAllString(image, "")
}
