package dto

import "strings"

type StatusRequest struct {
	StatusName string `json:"status_name" validate:"required,notblank,max=80"`
}

func (r *StatusRequest) Normalize() {
	r.StatusName = strings.Join(strings.Fields(r.StatusName), " ")
}
