package reviews

type CreateReviewRequest struct {
	ServiceID *int64 `json:"serviceId"`
	Name      string `json:"name"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string `json:"comment" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved"`
}
