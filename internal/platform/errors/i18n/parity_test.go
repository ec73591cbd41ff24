package i18n

import (
	"testing"

	apperrors "github.com/Slatyo/Valheim-Viking/internal/platform/errors"
)

// Every rejection code must have a base-locale message so no player ever
// sees a raw code.
func TestBaseCatalogCoversAllCodes(t *testing.T) {
	codes := []apperrors.Code{
		apperrors.CodeUnknown,
		apperrors.CodeNotAuthorized,
		apperrors.CodePayloadDecodeFailed,
		apperrors.CodeInvalidEntryPoint,
		apperrors.CodeEntryPointAlreadyChosen,
		apperrors.CodeEntryPointNotChosen,
		apperrors.CodeNodeNotFound,
		apperrors.CodeNodeIsStartType,
		apperrors.CodeNodeMaxRanked,
		apperrors.CodeNodeUnreachable,
		apperrors.CodeNoAvailablePoints,
		apperrors.CodeNoHistoryToUndo,
		apperrors.CodeDeallocationWouldOrphanNodes,
		apperrors.CodeInvalidSlotIndex,
		apperrors.CodeAbilityNotUnlocked,
		apperrors.CodeCatalogInvalid,
		apperrors.CodeNotFound,
	}

	c := GetCatalog(BaseLocale)
	for _, code := range codes {
		if _, ok := c.messages[string(code)]; !ok {
			t.Errorf("base catalog is missing a message for %s", code)
		}
	}
}
