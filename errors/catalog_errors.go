// api/errors/catalog_errors.go
package errors

import "errors"

var (
	ErrObservationTypeNotFound  = errors.New("observation type not found")
	ErrObservationValueNotFound = errors.New("observation value not found")
	ErrMitigationTypeNotFound   = errors.New("mitigation type not found")
	ErrMitigationValueNotFound  = errors.New("mitigation value not found")
	ErrInvalidCatalogData       = errors.New("invalid catalog data")
	ErrCatalogConflict          = errors.New("catalog entry conflict")
)
