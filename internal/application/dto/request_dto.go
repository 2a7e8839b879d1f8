package dto

import "time"

// CreateRequestRequest body para POST /api/requests.
type CreateRequestRequest struct {
	UserID   int64  `json:"user_id"`
	ItemID   int64  `json:"item_id"`
	Quantity int64  `json:"quantity"`
	Message  string `json:"message,omitempty"`
}

// UpdateRequestStatusRequest body para POST /api/requests/:id/status.
type UpdateRequestStatusRequest struct {
	Status    string `json:"status"` // APPROVED, REJECTED, COMPLETED
	AdminNote string `json:"admin_note,omitempty"`
	ActorID   int64  `json:"actor_id"`
}

// RequestResponse solicitud en listados y detalles.
type RequestResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ItemID    int64     `json:"item_id"`
	Quantity  int64     `json:"quantity"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	AdminNote string    `json:"admin_note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	ItemName  string `json:"item_name,omitempty"`
	ItemType  string `json:"item_type,omitempty"`
	ItemScan  string `json:"item_scan,omitempty"`
}
