package socket

import (
	"database/sql"
	"encoding/json"
	"time"

	"docbuilder/pkg/logger"

	"github.com/gorilla/websocket"
)

const (
	DocListType    = "DOC_LIST"    // Snapshot of the owner's documents, sent on join
	DocCreatedType = "DOC_CREATED" // A document was created
	DocUpdatedType = "DOC_UPDATED" // A document's content was uploaded
	DocDeletedType = "DOC_DELETED" // A document was deleted
)

// Event is a change notification for one owner's document list. The feed is
// advisory: clients re-fetch through the REST API, the event only tells them
// something changed.
type Event struct {
	Type    string          `json:"type"`
	OwnerID string          `json:"owner_id"`
	DocID   string          `json:"document_id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type DocSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DocType     string    `json:"docType"`
	PageSize    string    `json:"pageSize"`
	LastUpdated time.Time `json:"lastUpdate"`
}

// Hub fans document events out to connected listing clients, grouped into
// rooms by owning account id.
type Hub struct {
	Rooms      map[string]map[*Client]bool
	Broadcast  chan Event
	Register   chan *Client
	Unregister chan *Client
	db         *sql.DB
}

type Client struct {
	Hub     *Hub
	Conn    *websocket.Conn
	OwnerID string
	Send    chan []byte
}

func NewHub(db *sql.DB) *Hub {
	return &Hub{
		Rooms:      make(map[string]map[*Client]bool),
		Broadcast:  make(chan Event, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		db:         db,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			if h.Rooms[client.OwnerID] == nil {
				h.Rooms[client.OwnerID] = make(map[*Client]bool)
			}
			h.Rooms[client.OwnerID][client] = true

			// Send the current document list so the client starts from a
			// consistent state before any incremental events arrive.
			snapshot, err := h.loadSnapshot(client.OwnerID)
			if err != nil {
				logger.Sugar.Errorf("Failed to load document list for %s: %v", client.OwnerID, err)
				snapshot = []DocSummary{}
			}
			payload, _ := json.Marshal(snapshot)
			msg, _ := json.Marshal(Event{Type: DocListType, OwnerID: client.OwnerID, Payload: payload})
			client.Send <- msg

		case client := <-h.Unregister:
			if _, ok := h.Rooms[client.OwnerID][client]; ok {
				delete(h.Rooms[client.OwnerID], client)
				close(client.Send)
				if len(h.Rooms[client.OwnerID]) == 0 {
					delete(h.Rooms, client.OwnerID)
				}
			}

		case evt := <-h.Broadcast:
			payload, err := json.Marshal(evt)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling event: %v", err)
				continue
			}
			for client := range h.Rooms[evt.OwnerID] {
				select {
				case client.Send <- payload:
				default:
					// Lagging client; the event is advisory, drop it.
					logger.Sugar.Warnf("Client of %s has a full send buffer, dropping event", evt.OwnerID)
				}
			}
		}
	}
}

// Notify hands an event to the hub without blocking the request path. If the
// hub is saturated the event is dropped; clients recover on reconnect via
// the snapshot.
func (h *Hub) Notify(evt Event) {
	select {
	case h.Broadcast <- evt:
	default:
		logger.Sugar.Warnf("Event feed saturated, dropping %s for %s", evt.Type, evt.OwnerID)
	}
}

func (h *Hub) loadSnapshot(ownerID string) ([]DocSummary, error) {
	rows, err := h.db.Query(`SELECT id, title, doc_type, page_size, last_updated FROM documents WHERE owner_id = $1 ORDER BY created_at ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []DocSummary{}
	for rows.Next() {
		var d DocSummary
		if err := rows.Scan(&d.ID, &d.Title, &d.DocType, &d.PageSize, &d.LastUpdated); err != nil {
			continue
		}
		docs = append(docs, d)
	}
	return docs, nil
}
