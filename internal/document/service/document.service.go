package service

import (
	"database/sql"
	"encoding/json"
	"errors"

	accountrepo "docbuilder/internal/account/repository"
	"docbuilder/internal/document/model"
	"docbuilder/internal/document/repository"
	"docbuilder/internal/templates"
	"docbuilder/socket"

	"github.com/google/uuid"
)

var (
	ErrInvalidOwner = errors.New("invalid user")
	ErrNotFound     = errors.New("invalid document")
)

// DocumentService owns the document lifecycle. Every operation authorizes
// the body-supplied owner id with a single account-existence lookup; it does
// not compare the caller against the document's stored owner. That matches
// the access model the editors were built on.
type DocumentService struct {
	Repo     *repository.DocumentRepository
	Accounts *accountrepo.AccountRepository
	Hub      *socket.Hub
}

func NewDocumentService(repo *repository.DocumentRepository, accounts *accountrepo.AccountRepository, hub *socket.Hub) *DocumentService {
	return &DocumentService{Repo: repo, Accounts: accounts, Hub: hub}
}

func (s *DocumentService) checkOwner(ownerID string) error {
	exists, err := s.Accounts.Exists(ownerID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInvalidOwner
	}
	return nil
}

// Create resolves the starting content from the docType and stores the new
// document. Template resolution happens here and only here; updates never
// re-apply it.
func (s *DocumentService) Create(req model.CreateDocRequest) (string, error) {
	if err := s.checkOwner(req.UserID); err != nil {
		return "", err
	}

	title := req.Title
	if title == "" {
		title = "Untitled Document"
	}

	docID := uuid.NewString()
	content, template := templates.Resolve(req.DocType, req.Content)
	if err := s.Repo.Create(docID, title, content, req.UserID, req.DocType, req.PageSize, template); err != nil {
		return "", err
	}

	s.notify(socket.DocCreatedType, req.UserID, docID, map[string]string{"title": title, "docType": req.DocType})
	return docID, nil
}

// Upload replaces the document's content wholesale. Last write wins; there
// is no merge and no conflict signal.
func (s *DocumentService) Upload(req model.UploadDocRequest) error {
	if err := s.checkOwner(req.UserID); err != nil {
		return err
	}

	rows, err := s.Repo.UpdateContent(req.DocID, req.Content)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.notify(socket.DocUpdatedType, req.UserID, req.DocID, nil)
	return nil
}

func (s *DocumentService) Get(ownerID, docID string) (*model.Document, error) {
	if err := s.checkOwner(ownerID); err != nil {
		return nil, err
	}

	doc, err := s.Repo.GetByID(docID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete is a hard delete. Deleting an id that no longer exists is a no-op
// success, so repeated deletes from a stale listing don't surface errors.
func (s *DocumentService) Delete(ownerID, docID string) error {
	if err := s.checkOwner(ownerID); err != nil {
		return err
	}

	if err := s.Repo.Delete(docID); err != nil {
		return err
	}

	s.notify(socket.DocDeletedType, ownerID, docID, nil)
	return nil
}

func (s *DocumentService) List(ownerID string) ([]model.Document, error) {
	if err := s.checkOwner(ownerID); err != nil {
		return nil, err
	}
	return s.Repo.ListByOwner(ownerID)
}

func (s *DocumentService) notify(eventType, ownerID, docID string, payload interface{}) {
	evt := socket.Event{Type: eventType, OwnerID: ownerID, DocID: docID}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err == nil {
			evt.Payload = raw
		}
	}
	s.Hub.Notify(evt)
}
