package config

// CurrentVersion is the configuration format version written by Default.
const CurrentVersion = "1.0"

// Default returns the built-in gallery configuration.
func Default() *Config {
	cfg := &Config{Version: CurrentVersion}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills every unset field with its built-in value.
func applyDefaults(cfg *Config) {
	if cfg.Scheme == "" {
		cfg.Scheme = "auto"
	}

	g := &cfg.Gallery
	if g.Direction == "" {
		g.Direction = "vertical"
	}
	if len(g.Buttons) == 0 {
		g.Buttons = []string{"Cut", "Copy", "Paste"}
	}
	if len(g.Menu.Items) == 0 {
		g.Menu.Items = []MenuItemConfig{
			{Value: "wifi", Label: "Wi-Fi"},
			{Value: "bluetooth", Label: "Bluetooth"},
			{Value: "cellular", Label: "Cellular data"},
			{Value: "hotspot", Label: "Personal hotspot"},
		}
	}
	if len(g.Tabs) == 0 {
		g.Tabs = []TabConfig{
			{Name: "home", Title: "Home", Icon: "⌂"},
			{Name: "search", Title: "Search", Icon: "⌕"},
			{Name: "inbox", Title: "Inbox", Icon: "✉"},
			{Name: "profile", Title: "Profile", Icon: "☺"},
		}
	}
	if g.Picker.Mode == "" {
		g.Picker.Mode = "datetime"
	}
	if g.Picker.Flow == "" {
		g.Picker.Flow = "sequential"
	}
}
