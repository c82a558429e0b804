package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// MergeRequest asks for an ordered list of documents merged into one PDF
// @Description Ordered list of document requests to merge
type MergeRequest struct {
	Requests []domain.DocumentRequest `json:"requests"`
}

// KeyDocumentsRequest carries a normalized document list to filter
// @Description Normalized criminal documents to derive the key subset from
type KeyDocumentsRequest struct {
	Documents []domain.CriminalDocument `json:"documents"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks backing stores when configured)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "A backing store is unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Document endpoints

// handleRetrieveDocument godoc
// @Summary      Retrieve a single document
// @Description  Fetches one document through its type's retrieval strategy and streams the PDF back unmerged
// @Tags         Documents
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        request  body  domain.DocumentRequest  true  "Document request"
// @Success      200  {file}    binary
// @Failure      400  {object}  ErrorResponse  "Invalid request or document type"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      501  {object}  ErrorResponse  "Document type has no registered strategy"
// @Failure      502  {object}  ErrorResponse  "Upstream service failed or returned an empty document"
// @Router       /documents/retrieve [post]
func (s *Server) handleRetrieveDocument(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req domain.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stream, err := s.docService.Retrieve(r.Context(), *authCtx, req)
	if err != nil {
		writeDocumentError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, stream)
}

// handleMergeDocuments godoc
// @Summary      Merge documents
// @Description  Fetches every requested document concurrently and merges them in request order into a single base64-encoded PDF with per-document page ranges
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      MergeRequest  true  "Ordered document requests"
// @Success      200      {object}  domain.MergeResult
// @Failure      400      {object}  ErrorResponse  "Invalid request or document type"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      501      {object}  ErrorResponse  "Document type has no registered strategy"
// @Failure      502      {object}  ErrorResponse  "Upstream service failed or returned an empty document"
// @Router       /documents/merge [post]
func (s *Server) handleMergeDocuments(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req MergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.docService.Merge(r.Context(), *authCtx, req.Requests)
	if err != nil {
		writeDocumentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleBuildBundle godoc
// @Summary      Build a document bundle
// @Description  Merges a grouped document set into one PDF and returns the nested outline the viewer navigates by
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.BundleRequest  true  "Bundle request"
// @Success      200      {object}  domain.BundleResult
// @Failure      400      {object}  ErrorResponse  "Invalid request or document type"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      501      {object}  ErrorResponse  "Document type has no registered strategy"
// @Failure      502      {object}  ErrorResponse  "Upstream service failed or returned an empty document"
// @Router       /documents/bundle [post]
func (s *Server) handleBuildBundle(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req domain.BundleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.bundleService.Build(r.Context(), *authCtx, req)
	if err != nil {
		writeDocumentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Criminal file endpoints

// handleCriminalDocuments godoc
// @Summary      Normalize criminal file documents
// @Description  Maps an accused file's raw document rows into normalized documents, prepending the synthetic record-of-proceedings entry when the file has appearances
// @Tags         Files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.AccusedFile  true  "Accused file view"
// @Success      200      {array}   domain.CriminalDocument
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Router       /files/criminal/documents [post]
func (s *Server) handleCriminalDocuments(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var file domain.AccusedFile
	if err := json.NewDecoder(r.Body).Decode(&file); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	docs, err := s.recordsService.CriminalDocuments(r.Context(), file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to normalize documents")
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// handleCriminalKeyDocuments godoc
// @Summary      Select key criminal documents
// @Description  Filters a normalized document list down to the key subset: the most recent report, the key categories, and the most recent non-cancelled bail document
// @Tags         Files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      KeyDocumentsRequest  true  "Normalized documents"
// @Success      200      {array}   domain.CriminalDocument
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Router       /files/criminal/key-documents [post]
func (s *Server) handleCriminalKeyDocuments(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req KeyDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, s.recordsService.CriminalKeyDocuments(req.Documents))
}

// writeDocumentError maps document pipeline errors to HTTP statuses.
// Unsupported types are 501 rather than 400: the request names a real type
// this deployment has no strategy for.
func writeDocumentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidDocumentType):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnsupportedDocumentType):
		writeError(w, http.StatusNotImplemented, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUpstreamFailure), errors.Is(err, domain.ErrEmptyStream):
		writeError(w, http.StatusBadGateway, "upstream document service failed")
	case errors.Is(err, domain.ErrMergeFailed), errors.Is(err, domain.ErrPageCountMismatch):
		writeError(w, http.StatusInternalServerError, "document merge failed")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
