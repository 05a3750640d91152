package dto

type RootResponse struct {
	Message string `json:"message" example:"DevBox API is running"`
	Status  string `json:"status" example:"success"`
}
