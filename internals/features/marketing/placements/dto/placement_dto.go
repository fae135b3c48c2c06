package dto

import "strings"

type PlacementRequest struct {
	PlacementName  string `json:"placement_name" validate:"required,max=150"`
	PlacementImage string `json:"placement_image"`
}

func (r *PlacementRequest) Normalize() {
	r.PlacementName = strings.TrimSpace(r.PlacementName)
	r.PlacementImage = strings.TrimSpace(r.PlacementImage)
}
