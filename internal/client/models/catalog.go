package models

import "time"

// Property is a cached marketplace listing. All timestamps are UTC so the
// stored JSON stays revivable by the date-aware decoder.
type Property struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	LocationID  string    `json:"locationId"`
	AgentID     string    `json:"agentId"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Message is a visitor-to-agent contact message.
type Message struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	FromName   string    `json:"fromName"`
	FromEmail  string    `json:"fromEmail"`
	Body       string    `json:"body"`
	Read       bool      `json:"read"`
	SentAt     time.Time `json:"sentAt"`
}

// Location is one node of the location taxonomy. ParentID is empty for
// top-level regions.
type Location struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
}

// Rating is a buyer's rating of an agent.
type Rating struct {
	ID        string    `json:"id"`
	AgentID   string    `json:"agentId"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
