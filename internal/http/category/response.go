package category

import (
	"time"

	"github.com/ashiqdev/taka/internal/category"
)

type categoryResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      category.Type `json:"type"`
	Icon      string        `json:"icon"`
	Color     string        `json:"color"`
	IsDefault bool          `json:"is_default"`
	CreatedAt time.Time     `json:"created_at"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		Icon:      c.Icon,
		Color:     c.Color,
		IsDefault: c.IsDefault,
		CreatedAt: c.CreatedAt,
	}
}

func toResponseList(categories []*category.Category) []categoryResponse {
	resp := make([]categoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toResponse(c)
	}

	return resp
}
