package service

import (
	"os"
	"testing"
	"time"

	accountrepo "docbuilder/internal/account/repository"
	"docbuilder/internal/document/model"
	"docbuilder/internal/document/repository"
	"docbuilder/pkg/logger"
	"docbuilder/socket"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestService(t *testing.T) (*DocumentService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	svc := NewDocumentService(repository.NewDocumentRepository(db), accountrepo.NewAccountRepository(db), socket.NewHub(db))
	return svc, mock, func() { db.Close() }
}

func expectOwner(mock sqlmock.Sqlmock, ownerID string, exists bool) {
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM accounts WHERE id = \$1\)`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func TestCreateAppliesTemplateWhenContentEmpty(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	expectOwner(mock, "owner-1", true)
	tpl := "Formal Resignation Letter Template..."
	mock.ExpectExec("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), "My letter", tpl, "owner-1", "resignation", "A4", tpl).
		WillReturnResult(sqlmock.NewResult(0, 1))

	docID, err := svc.Create(model.CreateDocRequest{
		UserID: "owner-1", Title: "My letter", DocType: "resignation", PageSize: "A4",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, docID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateKeepsSuppliedContentVerbatim(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	expectOwner(mock, "owner-1", true)
	// Supplied content wins and the template column stays empty.
	mock.ExpectExec("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), "My resume", "Custom text", "owner-1", "resume", "A4", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := svc.Create(model.CreateDocRequest{
		UserID: "owner-1", Title: "My resume", DocType: "resume", PageSize: "A4", Content: "Custom text",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUnknownTypeUsesGenericTemplate(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	expectOwner(mock, "owner-1", true)
	mock.ExpectExec("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), "Odd one", "Generic Document Template...", "owner-1", "shopping-list", "Legal", "Generic Document Template...").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := svc.Create(model.CreateDocRequest{
		UserID: "owner-1", Title: "Odd one", DocType: "shopping-list", PageSize: "Legal",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDefaultsEmptyTitle(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	expectOwner(mock, "owner-1", true)
	mock.ExpectExec("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), "Untitled Document", sqlmock.AnyArg(), "owner-1", "resume", "A4", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := svc.Create(model.CreateDocRequest{UserID: "owner-1", DocType: "resume", PageSize: "A4"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInvalidOwner(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	expectOwner(mock, "ghost", false)

	_, err := svc.Create(model.CreateDocRequest{UserID: "ghost", DocType: "resume", PageSize: "A4"})
	assert.ErrorIs(t, err, ErrInvalidOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadIsIdempotent(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	req := model.UploadDocRequest{UserID: "owner-1", DocID: "doc-1", Content: `{"name":"Adam"}`}

	for i := 0; i < 2; i++ {
		expectOwner(mock, "owner-1", true)
		mock.ExpectExec("UPDATE documents SET content = \\$1 WHERE id = \\$2").
			WithArgs(req.Content, "doc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, svc.Upload(req))
	require.NoError(t, svc.Upload(req))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadMissingDocument(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	expectOwner(mock, "owner-1", true)
	mock.ExpectExec("UPDATE documents SET content = \\$1 WHERE id = \\$2").
		WithArgs("text", "ghost-doc").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Upload(model.UploadDocRequest{UserID: "owner-1", DocID: "ghost-doc", Content: "text"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func docRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "content", "owner_id", "doc_type", "page_size", "template", "created_at", "last_updated"})
}

func TestGetReturnsFullRecord(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	now := time.Now()
	expectOwner(mock, "owner-1", true)
	mock.ExpectQuery("SELECT id, title, content, owner_id, doc_type, page_size, template, created_at, last_updated FROM documents WHERE id = \\$1").
		WithArgs("doc-1").
		WillReturnRows(docRows().AddRow("doc-1", "My letter", "body", "owner-1", "resignation", "A4", "", now, now))

	doc, err := svc.Get("owner-1", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, "resignation", doc.DocType)
	assert.Equal(t, "A4", doc.PageSize)
}

// Any existing account may read any document; the owner check is existence
// only, never a match against the document's stored owner.
func TestGetPermitsForeignOwner(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	now := time.Now()
	expectOwner(mock, "owner-b", true)
	mock.ExpectQuery("SELECT id, title, content, owner_id, doc_type, page_size, template, created_at, last_updated FROM documents WHERE id = \\$1").
		WithArgs("doc-of-a").
		WillReturnRows(docRows().AddRow("doc-of-a", "A's letter", "body", "owner-a", "resignation", "A4", "", now, now))

	doc, err := svc.Get("owner-b", "doc-of-a")
	require.NoError(t, err)
	assert.Equal(t, "owner-a", doc.OwnerID)
}

func TestGetMissingDocument(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	expectOwner(mock, "owner-1", true)
	mock.ExpectQuery("SELECT id, title, content, owner_id, doc_type, page_size, template, created_at, last_updated FROM documents WHERE id = \\$1").
		WithArgs("deleted-doc").
		WillReturnRows(docRows())

	_, err := svc.Get("owner-1", "deleted-doc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingDocumentIsNoOp(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	expectOwner(mock, "owner-1", true)
	mock.ExpectExec("DELETE FROM documents WHERE id = \\$1").
		WithArgs("ghost-doc").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, svc.Delete("owner-1", "ghost-doc"))
}

func TestListReturnsOwnersDocumentsInCreationOrder(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	first := time.Now().Add(-time.Hour)
	second := time.Now()
	expectOwner(mock, "owner-1", true)
	mock.ExpectQuery("SELECT id, title, content, owner_id, doc_type, page_size, template, created_at, last_updated FROM documents WHERE owner_id = \\$1 ORDER BY created_at ASC").
		WithArgs("owner-1").
		WillReturnRows(docRows().
			AddRow("doc-1", "Letter", "Formal Resignation Letter Template...", "owner-1", "resignation", "A4", "Formal Resignation Letter Template...", first, first).
			AddRow("doc-2", "Resume", "Custom text", "owner-1", "resume", "A4", "", second, second))

	docs, err := svc.List("owner-1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-1", docs[0].ID)
	assert.Equal(t, "doc-2", docs[1].ID)
}

// The scenario from the product walkthrough: an account creates a templated
// resignation letter, then a resume with its own content, then lists both.
func TestCreateThenListScenario(t *testing.T) {
	svc, mock, cleanup := newTestService(t)
	defer cleanup()

	tpl := "Formal Resignation Letter Template..."
	expectOwner(mock, "owner-1", true)
	mock.ExpectExec("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), "Letter", tpl, "owner-1", "resignation", "A4", tpl).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectOwner(mock, "owner-1", true)
	mock.ExpectExec("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), "Resume", "Custom text", "owner-1", "resume", "A4", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := svc.Create(model.CreateDocRequest{UserID: "owner-1", Title: "Letter", DocType: "resignation", PageSize: "A4"})
	require.NoError(t, err)
	_, err = svc.Create(model.CreateDocRequest{UserID: "owner-1", Title: "Resume", DocType: "resume", PageSize: "A4", Content: "Custom text"})
	require.NoError(t, err)

	now := time.Now()
	expectOwner(mock, "owner-1", true)
	mock.ExpectQuery("SELECT id, title, content, owner_id, doc_type, page_size, template, created_at, last_updated FROM documents WHERE owner_id = \\$1 ORDER BY created_at ASC").
		WithArgs("owner-1").
		WillReturnRows(docRows().
			AddRow("doc-1", "Letter", tpl, "owner-1", "resignation", "A4", tpl, now.Add(-time.Minute), now.Add(-time.Minute)).
			AddRow("doc-2", "Resume", "Custom text", "owner-1", "resume", "A4", "", now, now))

	docs, err := svc.List("owner-1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, tpl, docs[0].Content)
	assert.Equal(t, "Custom text", docs[1].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}
