package entity

import "time"

// MenuConfig configuración del menú digital público (una sola fila).
type MenuConfig struct {
	RestaurantName string    `db:"restaurant_name"`
	Slogan         string    `db:"slogan"`
	WhatsApp       string    `db:"whatsapp"`
	Address        string    `db:"address"`
	CurrencySymbol string    `db:"currency_symbol"`
	PrimaryColor   string    `db:"primary_color"`
	LogoURL        string    `db:"logo_url"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// DefaultMenuConfig valores usados cuando aún no se ha guardado configuración.
func DefaultMenuConfig() MenuConfig {
	return MenuConfig{
		RestaurantName: "Mi Restaurante",
		CurrencySymbol: "S/",
		PrimaryColor:   "#C0392B",
	}
}
