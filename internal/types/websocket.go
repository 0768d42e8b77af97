package types

// MessageType defines the type of WebSocket message
type MessageType string

const (
	ConnectionStatus MessageType = "connection_status"
	Error            MessageType = "error"
	// Challenge event messages pushed to dashboard clients
	TradeExecuted          MessageType = "trade_executed"
	ChallengeStatusChanged MessageType = "challenge_status_changed"
	// Client control messages
	Ping MessageType = "ping"
	Pong MessageType = "pong"
)

// WebSocketMessage represents a WebSocket message
type WebSocketMessage struct {
	Type MessageType `json:"type"`
	Data interface{} `json:"data"`
}

// ConnectionStatusData represents connection status message data
type ConnectionStatusData struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}
