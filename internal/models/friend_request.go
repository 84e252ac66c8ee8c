package models

import "time"

// RequestStatus is the lifecycle state of a friend request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)

// FriendRequest represents a social edge between two members.
//
// Accepting flips Status in place. Declining removes the request from
// AppState.FriendRequests, so RequestStatusDeclined is never stored.
type FriendRequest struct {
	ID        string        `json:"id"`
	FromID    string        `json:"fromId"`
	ToID      string        `json:"toId"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
