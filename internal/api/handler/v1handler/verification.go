package v1handler

import (
	"encoding/json"
	"net/http"

	"breachcheck/pkg/domain"
	"breachcheck/pkg/serrors"
)

const maxBodyBytes = 1 << 16

// CreateVerificationRequest is the body of POST /breach-verification. Unknown
// fields are ignored.
type CreateVerificationRequest struct {
	Type        domain.SearchKind `json:"type"`
	SearchValue string            `json:"searchValue"`
}

// CreateVerification runs a breach verification for the caller.
func (h *Handler) CreateVerification(w http.ResponseWriter, r *http.Request) {
	var req CreateVerificationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	v, err := h.deps.Verifier.Verify(r.Context(), GetUserIDFromContext(r.Context()), req.Type, req.SearchValue)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeData(r.Context(), w, v)
}

// ListVerifications returns the caller's most recent searches.
func (h *Handler) ListVerifications(w http.ResponseWriter, r *http.Request) {
	history, err := h.deps.Verifier.History(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	if history == nil {
		history = []domain.SearchHistory{}
	}

	writeData(r.Context(), w, history)
}
