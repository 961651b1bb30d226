package catalog

import (
	"encoding/json"

	"ecoshop-assistant/internal/model"
)

// productPayload is the backend's product shape. The backend sends numeric
// ids and snake_case image urls; both are normalized in toModel.
type productPayload struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	ImageURL    string      `json:"image_url"`
	Category    string      `json:"category"`
	Rating      float64     `json:"rating"`
}

func (p productPayload) toModel() model.Product {
	return model.Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.ImageURL,
		Category:    p.Category,
		Rating:      p.Rating,
	}
}
