package model

import "time"

// DefaultTestimonialImage is attached to public submissions, which carry no upload.
const DefaultTestimonialImage = "/images/testimonials/default.jpg"

// Testimonial is a public feedback entry. IDs are sequential strings of the
// form "t<n>", assigned at submission time.
type Testimonial struct {
	ID        string    `json:"id" gorm:"size:20;primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Role      string    `json:"role" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"not null;default:5"`
	Image     string    `json:"image" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
}
