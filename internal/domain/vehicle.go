package domain

type Vehicle struct {
	ID               int64  `json:"id"`
	NumberPlate      string `json:"numberPlate"`
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	Category         string `json:"category"`
	Transmission     string `json:"transmission"`
	Fuel             string `json:"fuel"`
	ConstructionYear int    `json:"constructionYear"`
	Mileage          int64  `json:"mileage"`
}
