package ws

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/kunukumikhil-byte/being-connected1/internal/store"
)

// Event names mirrored by the browser client.
const (
	EventJoinRoom       = "join_room"
	EventSendMessage    = "send_message"
	EventReceiveMessage = "receive_message"
)

// Event is the JSON envelope exchanged over the socket. A send_message is
// echoed back to the room verbatim with the type switched to receive_message.
type Event struct {
	Type       string `json:"type"`
	Room       string `json:"room,omitempty"`
	SenderID   int    `json:"sender_id,omitempty"`
	ReceiverID int    `json:"receiver_id,omitempty"`
	Message    string `json:"message,omitempty"`
}

type joinRequest struct {
	client *Client
	room   string
}

type inbound struct {
	client *Client
	event  Event
}

// Hub owns room membership and the persist-then-broadcast path. All commands
// funnel through one Run goroutine, so membership changes and message sends
// in a room never interleave: broadcast order equals persistence order.
type Hub struct {
	// Registered clients, across all rooms.
	clients map[*Client]bool

	// Room membership, keyed by the sorted-pair room id.
	rooms map[string]map[*Client]bool

	join       chan joinRequest
	inbound    chan inbound
	register   chan *Client
	unregister chan *Client

	store store.Store
}

func NewHub(store store.Store) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		join:       make(chan joinRequest),
		inbound:    make(chan inbound),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		store:      store,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			h.drop(client)
		case req := <-h.join:
			// No check ties the claimed room to a session; any connection may
			// join any room. Joining while already in a room adds the second
			// membership (there is no leave event).
			clients := h.rooms[req.room]
			if clients == nil {
				clients = make(map[*Client]bool)
				h.rooms[req.room] = clients
			}
			clients[req.client] = true
		case in := <-h.inbound:
			h.handleSend(in.event)
		}
	}
}

// handleSend persists the message, then echoes it to every current member of
// the room, sender included. A failed write suppresses the broadcast.
func (h *Hub) handleSend(evt Event) {
	if _, err := h.store.SaveMessage(evt.SenderID, evt.ReceiverID, evt.Message); err != nil {
		log.Error().Err(err).Str("room", evt.Room).Msg("save message")
		return
	}

	evt.Type = EventReceiveMessage
	payload, err := json.Marshal(evt)
	if err != nil {
		log.Error().Err(err).Msg("marshal message")
		return
	}

	for client := range h.rooms[evt.Room] {
		select {
		case client.send <- payload:
		default:
			h.drop(client)
		}
	}
}

// drop removes a client from every room it joined and closes its send
// channel exactly once.
func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for room, clients := range h.rooms {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}
	close(client.send)
}
