package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found locally
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryNotFound is returned when a category id is absent from the catalog
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidRecord is returned when a scraped record fails validation
	ErrInvalidRecord = errors.New("invalid scraped record")

	// ErrRankingInProgress is returned when a ranking regeneration for the same
	// (date, category) key is already running
	ErrRankingInProgress = errors.New("ranking regeneration already in progress")
)
