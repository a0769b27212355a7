package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle
// between the service and transport/ws packages).
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
}
