package repository

import (
	"database/sql"

	"docbuilder/internal/document/model"
	"docbuilder/pkg/logger"
)

type DocumentRepository struct {
	DB *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(id, title, content, ownerID, docType, pageSize, template string) error {
	_, err := r.DB.Exec(`INSERT INTO documents (id, title, content, owner_id, doc_type, page_size, template, created_at, last_updated) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`,
		id, title, content, ownerID, docType, pageSize, template)
	if err != nil {
		logger.Sugar.Errorf("Failed to create document: %v", err)
	}
	return err
}

func (r *DocumentRepository) GetByID(docID string) (*model.Document, error) {
	var d model.Document
	err := r.DB.QueryRow(`SELECT id, title, content, owner_id, doc_type, page_size, template, created_at, last_updated FROM documents WHERE id = $1`, docID).
		Scan(&d.ID, &d.Title, &d.Content, &d.OwnerID, &d.DocType, &d.PageSize, &d.Template, &d.CreatedAt, &d.LastUpdated)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Sugar.Errorf("Failed to get doc %s: %v", docID, err)
		}
		return nil, err
	}
	return &d, nil
}

// UpdateContent replaces the content wholesale. last_updated is deliberately
// not touched: two identical uploads must leave the row byte-identical.
func (r *DocumentRepository) UpdateContent(docID, content string) (int64, error) {
	result, err := r.DB.Exec(`UPDATE documents SET content = $1 WHERE id = $2`, content, docID)
	if err != nil {
		logger.Sugar.Errorf("Failed to update content for doc %s: %v", docID, err)
		return 0, err
	}
	return result.RowsAffected()
}

func (r *DocumentRepository) Delete(docID string) error {
	_, err := r.DB.Exec("DELETE FROM documents WHERE id = $1", docID)
	if err != nil {
		logger.Sugar.Errorf("Failed to delete doc %s: %v", docID, err)
	}
	return err
}

func (r *DocumentRepository) ListByOwner(ownerID string) ([]model.Document, error) {
	rows, err := r.DB.Query(`SELECT id, title, content, owner_id, doc_type, page_size, template, created_at, last_updated FROM documents WHERE owner_id = $1 ORDER BY created_at ASC`, ownerID)
	if err != nil {
		logger.Sugar.Errorf("Failed to list documents for %s: %v", ownerID, err)
		return nil, err
	}
	defer rows.Close()

	docs := []model.Document{}
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Content, &d.OwnerID, &d.DocType, &d.PageSize, &d.Template, &d.CreatedAt, &d.LastUpdated); err != nil {
			continue
		}
		docs = append(docs, d)
	}
	return docs, nil
}
