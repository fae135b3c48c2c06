package dto

import "strings"

type CareerRequest struct {
	CareerName string `json:"career_name" validate:"required,max=150"`
}

func (r *CareerRequest) Normalize() {
	r.CareerName = strings.TrimSpace(r.CareerName)
}
