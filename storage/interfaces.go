package storage

import "card-lister/models"

// ResultWriter is the interface any listing-result backend must satisfy.
type ResultWriter interface {
	Write(results []*models.ListingResult) error
	Close() error
}

// CardReader loads card attributes for batch processing.
type CardReader interface {
	Load(path string) ([]*models.CardAttributes, error)
}
