package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"docbuilder/internal/document/model"
	"docbuilder/internal/document/service"
	"docbuilder/internal/templates"
	"docbuilder/pkg/logger"
	"docbuilder/pkg/response"
)

type DocumentHandler struct {
	Service *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{Service: svc}
}

func (h *DocumentHandler) fail(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidOwner):
		response.Fail(w, "Invalid user")
	case errors.Is(err, service.ErrNotFound):
		response.Fail(w, "Invalid document")
	default:
		logger.Sugar.Errorf("Handler: %s: %v", fallback, err)
		response.Fail(w, fallback)
	}
}

func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.CreateDocRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	docID, err := h.Service.Create(req)
	if err != nil {
		h.fail(w, err, "Failed to create document")
		return
	}

	response.JSON(w, model.CreateDocResponse{Base: response.OK("Document created successfully"), DocID: docID})
}

func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.UploadDocRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	if err := h.Service.Upload(req); err != nil {
		h.fail(w, err, "Failed to upload document")
		return
	}

	response.JSON(w, response.OK("Document uploaded successfully"))
}

func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.DocRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	doc, err := h.Service.Get(req.UserID, req.DocID)
	if err != nil {
		h.fail(w, err, "Failed to fetch document")
		return
	}

	response.JSON(w, model.GetDocResponse{Base: response.OK("Document fetched successfully"), Doc: doc})
}

func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.DocRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	if err := h.Service.Delete(req.UserID, req.DocID); err != nil {
		h.fail(w, err, "Failed to delete document")
		return
	}

	response.JSON(w, response.OK("Document deleted successfully"))
}

func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.ListDocsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	docs, err := h.Service.List(req.UserID)
	if err != nil {
		h.fail(w, err, "Failed to fetch documents")
		return
	}

	response.JSON(w, model.ListDocsResponse{Base: response.OK("Documents fetched successfully"), Docs: docs})
}

// ResolveTemplate maps a (docType, templateStyle) pair to its static PDF
// asset. Static lookup, no state.
func (h *DocumentHandler) ResolveTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.TemplateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	path, err := templates.ResolveAsset(req.DocType, req.TemplateStyle)
	if err != nil {
		response.Fail(w, "Template not found")
		return
	}

	response.JSON(w, model.TemplateAssetResponse{Base: response.OK("Template found"), PDFURL: path})
}

// GetSchema serves the declarative field schema the generic editor renders
// for a docType.
func (h *DocumentHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.SchemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	schema, ok := templates.Schema(req.DocType)
	if !ok {
		response.Fail(w, "No editor schema for that document type")
		return
	}

	response.JSON(w, model.SchemaResponse{Base: response.OK("Schema fetched successfully"), Schema: &schema})
}
