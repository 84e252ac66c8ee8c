package models

import (
	"maps"
	"time"
)

// MessageKind distinguishes member-authored messages from system notices.
type MessageKind string

const (
	MessageKindUser   MessageKind = "user"
	MessageKindSystem MessageKind = "system"
)

// Message is a chat entry in a group's feed. Messages are appended in
// chronological order and never edited or deleted; only Reactions change.
type Message struct {
	// ID is unique within the group's message list.
	ID string `json:"id"`

	// GroupID is the group whose feed holds the message.
	GroupID string `json:"groupId"`

	// AuthorID is the member who wrote the message. Empty for system messages.
	AuthorID string `json:"authorId,omitempty"`

	// Kind is either user or system.
	Kind MessageKind `json:"kind"`

	// Text is the message body.
	Text string `json:"text"`

	// CreatedAt is when the message was posted.
	CreatedAt time.Time `json:"createdAt"`

	// ReplyToID is the ID of the message this one replies to, if any.
	// Stored as given; not checked against the feed.
	ReplyToID string `json:"replyToId,omitempty"`

	// Reactions counts reactions per emoji. Counts only grow and are not
	// tracked per reacting member.
	Reactions map[string]int `json:"reactions,omitempty"`
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	if m.Reactions != nil {
		m.Reactions = maps.Clone(m.Reactions)
	}
	return m
}
