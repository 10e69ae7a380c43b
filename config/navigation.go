package config

// NavigationConfig controls which tab layout capabilities this build ships.
type NavigationConfig struct {
	// AdminTabEnabled turns the admin tab, and with it the admin role probe, on or off.
	AdminTabEnabled bool `env:"ADMIN_TAB_ENABLED" envDefault:"true"`
}
