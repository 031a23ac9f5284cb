package dto

import "time"

// MenuConfigRequest body para PUT /api/menu/config.
type MenuConfigRequest struct {
	RestaurantName string `json:"nombreRestaurante" validate:"required,max=200"`
	Slogan         string `json:"eslogan" validate:"omitempty,max=300"`
	WhatsApp       string `json:"whatsapp" validate:"omitempty,max=30"`
	Address        string `json:"direccion" validate:"omitempty,max=300"`
	CurrencySymbol string `json:"simboloMoneda" validate:"required,max=5"`
	PrimaryColor   string `json:"colorPrimario" validate:"omitempty,hexcolor"`
	LogoURL        string `json:"logoUrl" validate:"omitempty,url"`
}

// MenuConfigResponse configuración del menú digital.
type MenuConfigResponse struct {
	RestaurantName string    `json:"nombreRestaurante"`
	Slogan         string    `json:"eslogan"`
	WhatsApp       string    `json:"whatsapp"`
	Address        string    `json:"direccion"`
	CurrencySymbol string    `json:"simboloMoneda"`
	PrimaryColor   string    `json:"colorPrimario"`
	LogoURL        string    `json:"logoUrl"`
	UpdatedAt      time.Time `json:"actualizadoEn"`
}

// MenuCategory productos disponibles de una categoría.
type MenuCategory struct {
	Category string            `json:"categoria"`
	Products []ProductResponse `json:"productos"`
}

// MenuResponse respuesta pública de GET /api/menu.
type MenuResponse struct {
	Config     MenuConfigResponse `json:"config"`
	Categories []MenuCategory     `json:"categorias"`
}
