package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Command-submission errors
	CodeNotAuthorized       Code = "NOT_AUTHORIZED"
	CodePayloadDecodeFailed Code = "PAYLOAD_DECODE_FAILED"

	// Entry-point errors
	CodeInvalidEntryPoint       Code = "INVALID_ENTRY_POINT"
	CodeEntryPointAlreadyChosen Code = "ENTRY_POINT_ALREADY_CHOSEN"
	CodeEntryPointNotChosen     Code = "ENTRY_POINT_NOT_CHOSEN"

	// Allocation errors
	CodeNodeNotFound      Code = "NODE_NOT_FOUND"
	CodeNodeIsStartType   Code = "NODE_IS_START_TYPE"
	CodeNodeMaxRanked     Code = "NODE_MAX_RANKED"
	CodeNodeUnreachable   Code = "NODE_UNREACHABLE"
	CodeNoAvailablePoints Code = "NO_AVAILABLE_POINTS"

	// Backtrack errors
	CodeNoHistoryToUndo              Code = "NO_HISTORY_TO_UNDO"
	CodeDeallocationWouldOrphanNodes Code = "DEALLOCATION_WOULD_ORPHAN_NODES"

	// Ability-slot errors
	CodeInvalidSlotIndex   Code = "INVALID_SLOT_INDEX"
	CodeAbilityNotUnlocked Code = "ABILITY_NOT_UNLOCKED"

	// Catalog errors
	CodeCatalogInvalid Code = "CATALOG_INVALID"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)
