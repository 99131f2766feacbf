package models

type GalleryItem struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}
