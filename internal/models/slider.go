package models

type Slider struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	// Mirror of ImageURL; the landing page slider reads "image".
	Image string `json:"image" gorm:"-"`
}

func (s *Slider) FillImage() {
	s.Image = s.ImageURL
}
