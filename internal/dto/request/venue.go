package request

type CreateVenueRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// UpdateVenueRequest carries partial updates; absent fields keep their value.
type UpdateVenueRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}
