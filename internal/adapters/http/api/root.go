// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// endpointInfo describes one routed endpoint in the index response.
type endpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type rootResponse struct {
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Endpoints []endpointInfo `json:"endpoints"`
}

// RootHandler serves the service index.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / requests with a listing of available endpoints.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, rootResponse{
		Status:  "success",
		Message: "team builder API is running",
		Endpoints: []endpointInfo{
			{Method: http.MethodGet, Path: "/team-builder", Description: "Build a team based on budget"},
			{Method: http.MethodGet, Path: "/minimum-budget", Description: "Minimum feasible budget for the catalog"},
			{Method: http.MethodGet, Path: "/products", Description: "List the product catalog"},
			{Method: http.MethodGet, Path: "/stats", Description: "Service statistics"},
			{Method: http.MethodGet, Path: "/healthz", Description: "Health and metrics"},
		},
	})
}
