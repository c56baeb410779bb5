package router

import (
	"database/sql"
	"net/http"
	"os"

	accountHandler "docbuilder/internal/account"
	accountRepository "docbuilder/internal/account/repository"
	accountService "docbuilder/internal/account/service"
	docHandler "docbuilder/internal/document"
	docRepository "docbuilder/internal/document/repository"
	docService "docbuilder/internal/document/service"
	"docbuilder/middleware"
	"docbuilder/pkg/token"
	"docbuilder/socket"
)

func Setup(db *sql.DB, hub *socket.Hub) http.Handler {
	mux := http.NewServeMux()

	// WebSocket event feed; the only token-gated surface.
	wsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.Context().Value(middleware.UserIDKey).(string)
		socket.ServeWs(hub, w, r, ownerID)
	})
	mux.Handle("/ws", middleware.AuthMiddleware(wsHandler))

	// REST API
	issuer := token.NewIssuer(os.Getenv("JWT_SECRET"))
	accRepo := accountRepository.NewAccountRepository(db)
	accService := accountService.NewAccountService(accRepo, issuer)
	accounts := accountHandler.NewAccountHandler(accService)

	dRepo := docRepository.NewDocumentRepository(db)
	dService := docService.NewDocumentService(dRepo, accRepo, hub)
	documents := docHandler.NewDocumentHandler(dService)

	mux.HandleFunc("/api/auth/signup", accounts.Signup)
	mux.HandleFunc("/api/auth/login", accounts.Login)
	mux.HandleFunc("/api/auth/logout", accounts.Logout)
	mux.HandleFunc("/api/users/get", accounts.GetUser)

	mux.HandleFunc("/api/documents/create", documents.CreateDocument)
	mux.HandleFunc("/api/documents/upload", documents.UploadDocument)
	mux.HandleFunc("/api/documents/get", documents.GetDocument)
	mux.HandleFunc("/api/documents/delete", documents.DeleteDocument)
	mux.HandleFunc("/api/documents/list", documents.ListDocuments)

	mux.HandleFunc("/api/templates/resolve", documents.ResolveTemplate)
	mux.HandleFunc("/api/templates/schema", documents.GetSchema)

	return middleware.CORSMiddleware(mux)
}
