package model

// ChatRole is who authored a chat message.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleAgent ChatRole = "agent"
)

// ChatMessage is one turn in the concierge conversation.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ReplyType tags what kind of payload a chat reply carries.
type ReplyType string

const (
	ReplyText       ReplyType = "text"
	ReplyImages     ReplyType = "images"
	ReplyReviews    ReplyType = "reviews"
	ReplyWebResults ReplyType = "web_results"
)

// ChatReply is the concierge's answer. Text is always set; Data holds the
// payload for non-text reply types (image URLs or search results). Audio is
// optional base64 MP3 of the spoken reply.
type ChatReply struct {
	Text  string    `json:"text"`
	Data  any       `json:"data,omitempty"`
	Type  ReplyType `json:"type,omitempty"`
	Audio string    `json:"audio,omitempty"`
}
