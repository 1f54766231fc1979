package backup

// ExportVersion is stamped on every export envelope
const ExportVersion = "1"

// Error reason strings surfaced in import results
const (
	ReasonMalformedJSON   = "backup is not valid JSON"
	ReasonWrongFieldType  = "backup field has the wrong type"
	ReasonMissingFields   = "backup is missing required fields"
	ReasonNegativeNumbers = "backup contains negative progression values"
	ReasonUnknownVersion  = "backup version is not supported"
)
