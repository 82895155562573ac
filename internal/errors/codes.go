// Package errors provides structured domain errors with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Character errors
	CodeCharacterNoPoints           Code = "CHARACTER_NO_UNASSIGNED_POINTS"
	CodeCharacterInsufficientEnergy Code = "CHARACTER_INSUFFICIENT_ENERGY"
	CodeCharacterInsufficientTokens Code = "CHARACTER_INSUFFICIENT_TOKENS"
	CodeCharacterInvalidAmount      Code = "CHARACTER_INVALID_AMOUNT"
	CodeCharacterUnknownStat        Code = "CHARACTER_UNKNOWN_STAT"

	// Catalog errors
	CodeCatalogDuplicateID      Code = "CATALOG_DUPLICATE_ID"
	CodeCatalogUnknownReference Code = "CATALOG_UNKNOWN_REFERENCE"
	CodeCatalogInvalidValue     Code = "CATALOG_INVALID_VALUE"

	// Submission errors
	CodeSubmissionEmptyPrompt Code = "SUBMISSION_EMPTY_PROMPT"
	CodeSubmissionNoEnergy    Code = "SUBMISSION_INSUFFICIENT_ENERGY"
	CodeSubmissionInFlight    Code = "SUBMISSION_IN_FLIGHT"

	// Journal errors
	CodeJournalUnknownEvent Code = "JOURNAL_UNKNOWN_EVENT_TYPE"
)
