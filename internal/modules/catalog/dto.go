package catalog

type UpsertItemRequest struct {
	Name        map[string]string `json:"name" validate:"required,min=1"`
	Description map[string]string `json:"description"`
	Price       int64             `json:"price" validate:"gte=0"`
	Duration    int               `json:"duration" validate:"gte=0"`
	Category    string            `json:"category"`
	ImageURL    string            `json:"imageUrl" validate:"omitempty,url"`
}
