package model

// CareCenter is read-only reference data describing a care location.
// Rows are loaded by the seed command; no mutation endpoints exist.
type CareCenter struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Address     string  `json:"address" gorm:"size:512"`
	Phone       string  `json:"phone" gorm:"size:50"`
	Hours       string  `json:"hours" gorm:"size:255"`
	Image       string  `json:"image" gorm:"size:512"`
	Rating      float64 `json:"rating"`
}

// Service is read-only reference data describing an offered care program.
type Service struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	Price       string `json:"price" gorm:"size:50"`
	Duration    string `json:"duration" gorm:"size:100"`
	Image       string `json:"image" gorm:"size:512"`
}
