package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	searchplan "github.com/ritamzico/searchplan"
	"github.com/ritamzico/searchplan/internal/demo"
)

var allowedOrigins = []string{
	"http://localhost:5173",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type planRequest struct {
	RootType string `json:"rootType"`
	Filter   string `json:"filter"`
}

type planResponse struct {
	PushdownEligible bool                   `json:"pushdownEligible"`
	IndexQuery       string                 `json:"indexQuery,omitempty"`
	GraphProgram     string                 `json:"graphProgram"`
	Gremlin          string                 `json:"gremlin"`
	Bindings         map[string]interface{} `json:"bindings"`
	Diagnostics      []diagnosticDTO        `json:"diagnostics,omitempty"`
}

type diagnosticDTO struct {
	Kind          string `json:"kind"`
	AttributeName string `json:"attributeName"`
	Message       string `json:"message"`
}

func handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Filter == "" {
		writeError(w, http.StatusBadRequest, "missing field: filter")
		return
	}
	if req.RootType == "" {
		req.RootType = "Table"
	}

	root, err := searchplan.ParseFilter(req.Filter)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	planner := searchplan.NewPlannerWithDefaults(req.RootType, demo.Schema(), demo.IndexCatalog())
	plan, err := planner.Plan(root)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := planResponse{
		PushdownEligible: plan.PushdownEligible,
		IndexQuery:       plan.IndexQuery,
		GraphProgram:     plan.GraphProgram.String(),
		Gremlin:          plan.Gremlin.Steps,
		Bindings:         plan.Gremlin.Bindings,
	}
	for _, d := range plan.Diagnostics {
		resp.Diagnostics = append(resp.Diagnostics, diagnosticDTO{Kind: d.Kind, AttributeName: d.AttributeName, Message: d.Message})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	router := mux.NewRouter()
	router.HandleFunc("/plan", handlePlan).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", *port)
	logrus.Infof("searchplan server listening on %s", addr)
	if err := http.ListenAndServe(addr, corsMiddleware(router)); err != nil {
		logrus.WithError(err).Error("server error")
	}
}
