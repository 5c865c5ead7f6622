package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/outputfield/web/binder"
)

// Patch mode aliases for convenience
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // Replace entire element
	PatchAppend  = datastar.ElementPatchModeAppend  // Append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // Prepend inside element
)

// IsDataStar checks if the request was issued by DataStar.
// Detection is shared with the binder package so that binding and
// rendering always agree on the request kind.
func IsDataStar(r *http.Request) bool {
	return binder.IsDataStar(r)
}
