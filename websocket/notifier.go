package websocket

import (
	"encoding/json"
	"log"
	"time"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// Notifier owns the two-step notification contract: durably persist a
// notification row, then queue a best-effort broadcast to the admins
// room. The queue decouples the push from the request-response cycle,
// so a slow or absent hub never affects HTTP handlers. Persistence
// failure is logged, not propagated; a full queue drops the push.
type Notifier struct {
	hub   *Hub
	queue chan *Message
}

// NewNotifier creates a notifier backed by the given hub and starts
// the drain goroutine.
func NewNotifier(hub *Hub) *Notifier {
	n := &Notifier{
		hub:   hub,
		queue: make(chan *Message, 100),
	}
	go n.run()
	return n
}

func (n *Notifier) run() {
	for message := range n.queue {
		if n.hub == nil {
			log.Printf("⚠️ WebSocket hub not available for broadcast")
			continue
		}
		n.hub.Broadcast <- message
		log.Printf("📡 %s broadcasted to admins room", message.Event)
	}
}

// Publish persists a notification row of the given type and queues the
// socket event for the admins room. The payload must be JSON-encodable.
func (n *Notifier) Publish(notificationType, socketEvent string, payload interface{}, userID *uint) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Failed to encode %s payload: %v", notificationType, err)
		return
	}

	notification := models.Notification{
		Type:    notificationType,
		Payload: string(raw),
		UserID:  userID,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		// Notification is a side effect, not a guarantee.
		log.Printf("⚠️ Failed to persist %s notification: %v", notificationType, err)
	}

	n.Emit(socketEvent, payload)
}

// Emit queues a socket event without persisting anything.
func (n *Notifier) Emit(socketEvent string, payload interface{}) {
	message := &Message{
		Event:     socketEvent,
		Data:      payload,
		Timestamp: time.Now(),
	}

	select {
	case n.queue <- message:
	default:
		log.Printf("⚠️ Broadcast queue full, dropping %s event", socketEvent)
	}
}
