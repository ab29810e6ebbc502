package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the log output filterable.
const (
	FieldUser     = "user"
	FieldBucket   = "bucket"
	FieldCategory = "category"
	FieldCount    = "count"
	FieldFile     = "file_path"
	FieldIndex    = "index"
	FieldOrder    = "order"
	FieldFormat   = "format"
	FieldError    = "error"
)
