package domain

import "time"

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
)

type Review struct {
	ID        int64        `json:"id"`
	UserID    *int64       `json:"userId,omitempty"`
	ServiceID *int64       `json:"serviceId,omitempty"`
	Name      string       `json:"name,omitempty"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	Status    ReviewStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}
