package api

import (
	"net/http"
	"strconv"

	"github.com/raushankrgupta/tryon-studio/models"
	"github.com/raushankrgupta/tryon-studio/utils"
)

// HistoryResponse represents the response structure for the history API
type HistoryResponse struct {
	Results     []models.Result `json:"results"`
	Total       int             `json:"total"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
}

// HistoryHandler returns a paginated newest-first view of the session's
// try-on history. The ledger itself is uncapped and never mutated here.
func HistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := lookupSession(w, r, nil)
	if sess == nil {
		return
	}

	page := 1
	limit := 10

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	results := sess.History.All()
	total := len(results)

	skip := (page - 1) * limit
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}
	pageResults := results[skip:end]

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	utils.RespondJSON(w, http.StatusOK, HistoryResponse{
		Results:     pageResults,
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}
