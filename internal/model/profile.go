package model

// BusinessProfile identifies the client business being boosted. It is embedded
// in every request body and never persisted.
type BusinessProfile struct {
	BusinessName string `json:"business_name" binding:"required"`
	Location     string `json:"location"      binding:"required"`
	Industry     string `json:"industry"      binding:"required"`
	MainService  string `json:"main_service"  binding:"required"`
}
