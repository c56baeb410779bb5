package model

import (
	"time"

	"docbuilder/internal/templates"
	"docbuilder/pkg/response"
)

// Document is the full stored record. Content is opaque to the store: the
// resume editor writes a JSON field map, the letter editors write raw text.
// Wire names match what the editors already consume.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	OwnerID     string    `json:"uploadedBy"`
	DocType     string    `json:"docType"`
	PageSize    string    `json:"pageSize"`
	Template    string    `json:"template"`
	CreatedAt   time.Time `json:"date"`
	LastUpdated time.Time `json:"lastUpdate"`
}

type CreateDocRequest struct {
	UserID   string `json:"userId"`
	Title    string `json:"docName"`
	DocType  string `json:"docType"`
	PageSize string `json:"pageSize"`
	Content  string `json:"content"`
}

type CreateDocResponse struct {
	response.Base
	DocID string `json:"docId,omitempty"`
}

type UploadDocRequest struct {
	UserID  string `json:"userId"`
	DocID   string `json:"docId"`
	Content string `json:"content"`
}

type DocRequest struct {
	UserID string `json:"userId"`
	DocID  string `json:"docId"`
}

type GetDocResponse struct {
	response.Base
	Doc *Document `json:"doc,omitempty"`
}

type ListDocsRequest struct {
	UserID string `json:"userId"`
}

type ListDocsResponse struct {
	response.Base
	Docs []Document `json:"docs"`
}

type TemplateAssetRequest struct {
	DocType       string `json:"docType"`
	TemplateStyle string `json:"templateStyle"`
}

type TemplateAssetResponse struct {
	response.Base
	PDFURL string `json:"pdfUrl,omitempty"`
}

type SchemaRequest struct {
	DocType string `json:"docType"`
}

type SchemaResponse struct {
	response.Base
	Schema *templates.FormSchema `json:"schema,omitempty"`
}
