package dto

// ProductResponse producto del catálogo.
type ProductResponse struct {
	Name string `json:"name"`
}
