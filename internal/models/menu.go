package models

type MenuCategory struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	MenuLink    string `json:"menu_link"`
}

type MenuItem struct {
	ID          string   `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name" gorm:"not null"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category" gorm:"not null"`
}

type MenuItemRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category" validate:"required"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
}
