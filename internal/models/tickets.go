package models

import "time"

// Support ticket statuses
const (
	TicketStatusOpen     = "open"
	TicketStatusAnswered = "answered"
	TicketStatusClosed   = "closed"
)

// TicketRequest - ticket creation payload
type TicketRequest struct {
	Subject string `json:"subject" validate:"required,max=140"`
	Body    string `json:"body" validate:"required"`
}

// TicketReply - admin reply payload
type TicketReply struct {
	Body string `json:"body" validate:"required"`
}

// TicketData - support ticket model from the store
type TicketData struct {
	ID         string
	UserID     string
	Subject    string
	Body       string
	Status     string
	AdminReply string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
