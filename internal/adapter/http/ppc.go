package httpadapter

import (
	"errors"
	"net/http"
	"strconv"

	"ppc-optimizer/internal/core/bidding"
	"ppc-optimizer/internal/core/domain"
)

// formFileField is the multipart field carrying the spreadsheet.
const formFileField = "file"

// handleProcessPPC accepts a multipart upload in the "file" field and
// returns every row with a suggested_bid as a JSON array. A missing file or
// a disallowed extension results in HTTP 400; unreadable spreadsheets and
// rows without acos or current_bid result in HTTP 500.
func (h *Handler) handleProcessPPC(w http.ResponseWriter, r *http.Request) {
	upload, done, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	defer done()

	records, err := h.svc.SuggestBids(r.Context(), upload)
	if err != nil {
		h.writeError(w, r, "process ppc", err)
		return
	}
	h.writeJSON(w, http.StatusOK, records)
}

// handleMaxBids works like handleProcessPPC but appends target_acos and
// new_max_bid to every row. The optional target_acos query parameter
// defaults to 30; non-numeric or non-positive values result in HTTP 400.
func (h *Handler) handleMaxBids(w http.ResponseWriter, r *http.Request) {
	target := bidding.DefaultTargetACOS
	if raw := r.URL.Query().Get(domain.FieldTargetACOS); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, r, "max bids", &domain.InvalidArgumentError{Name: domain.FieldTargetACOS, Reason: "not a number"})
			return
		}
		target = v
	}
	if err := bidding.ValidateTargetACOS(target); err != nil {
		h.writeError(w, r, "max bids", err)
		return
	}

	upload, done, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	defer done()

	records, err := h.svc.MaxBids(r.Context(), upload, target)
	if err != nil {
		h.writeError(w, r, "max bids", err)
		return
	}
	h.writeJSON(w, http.StatusOK, records)
}

// readUpload extracts the uploaded file from a multipart request. On failure
// it writes a 400 response and returns ok=false. The returned done func
// releases the multipart file and any temporary parts.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (upload domain.Upload, done func(), ok bool) {
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}
	file, header, err := r.FormFile(formFileField)
	if err != nil {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrMissingFile):
			h.writeMessage(w, http.StatusBadRequest, "No file part")
		case errors.As(err, &tooLarge):
			h.writeMessage(w, http.StatusBadRequest, "File too large")
		default:
			h.writeMessage(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		}
		return domain.Upload{}, nil, false
	}

	done = func() {
		_ = file.Close()
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}
	if header.Filename == "" {
		done()
		h.writeMessage(w, http.StatusBadRequest, "No selected file")
		return domain.Upload{}, nil, false
	}
	return domain.Upload{Filename: header.Filename, Body: file}, done, true
}
