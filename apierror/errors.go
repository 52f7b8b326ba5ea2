package apierror

import "errors"

// ErrDefinitionConflict reports an invalid taxonomy definition: an empty or
// duplicate code, a status outside the HTTP range, or a nil descriptor. It
// is returned by New and ParseCatalog and wrapped with the offending
// taxonomy and code.
var ErrDefinitionConflict = errors.New("apierror: definition conflict")
