package httpadapter

import "net/http"

// handleBrandShare accepts a brand-analytics export and returns the search
// queries whose cart-add share beats both impression and click share.
func (h *Handler) handleBrandShare(w http.ResponseWriter, r *http.Request) {
	upload, done, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	defer done()

	rows, err := h.svc.BrandShare(r.Context(), upload)
	if err != nil {
		h.writeError(w, r, "brand share", err)
		return
	}
	h.writeJSON(w, http.StatusOK, rows)
}
