package config

import (
	_ "embed"
)

//go:embed defaults/aviation.yaml
var defaultAviationYAML []byte

//go:embed defaults/chef.yaml
var defaultChefYAML []byte

//go:embed defaults/bartender.yaml
var defaultBartenderYAML []byte

//go:embed defaults/careers.yaml
var defaultCareersYAML []byte

// DefaultInterstitial is the generic halfway message.
var DefaultInterstitial = Message{
	Title: "¡VAS MUY BIEN!",
	Body:  "CEVATUR PIURA TIENE 50 AÑOS EN EL RUBRO DE TURISMO, ¿QUIERES CONTINUAR PARA GANAR Y ACCEDER A NUESTRAS OFERTAS?",
}

// DefaultAviationConfig returns the default aviation configuration.
func DefaultAviationConfig() AviationConfig {
	return AviationConfig{
		Ceiling: 30,
		Timing:  Timing{StepMS: 16, SpawnMS: 800},
		Player: AviationPlayer{
			X:       10,
			StartY:  50,
			Y:       Range{Min: 5, Max: 95},
			KeyStep: 8,
			Hitbox:  Extents{Left: 5, Right: 8, Up: 10, Down: 10},
			Glyph:   "🛫",
		},
		Obstacles: AviationObstacles{
			MaxLive:  16,
			SpawnX:   105,
			Y:        Range{Min: 10, Max: 90},
			Speed:    2,
			DespawnX: -10,
			Palette:  []string{"✈️", "🛩️", "🚁", "🍸", "🍹", "🍕", "🍔"},
		},
		PerTick: 0.1,
		Interstitial: Message{
			Title: "¡VUELAS INCREÍBLE!",
			Body:  "CEVATUR PIURA ES LA ACADEMIA N°1 EN AVIACIÓN COMERCIAL DEL NORTE CON 50 AÑOS FORMANDO AZAFATAS Y SOBRECARGOS PROFESIONALES. ¿QUIERES CONTINUAR Y DESCUBRIR TU FUTURO EN LOS CIELOS?",
		},
	}
}

// DefaultChefConfig returns the default chef configuration.
func DefaultChefConfig() ChefConfig {
	return ChefConfig{
		Ceiling: 30,
		Lives:   3,
		Timing:  Timing{StepMS: 16, SpawnMS: 700},
		Player: ChefPlayer{
			StartX:  50,
			X:       Range{Min: 10, Max: 90},
			Y:       90,
			KeyStep: 8,
			Reach:   15,
			Glyph:   "🍳",
		},
		Items: ChefItems{
			MaxLive:   16,
			X:         Range{Min: 10, Max: 90},
			SpawnY:    -5,
			Speed:     Range{Min: 3, Max: 5},
			Scale:     0.3,
			GoodRatio: 0.75,
			CatchY:    Range{Min: 82, Max: 88},
			FloorY:    100,
			Good:      []string{"🍕", "🍔", "🌮", "🍣", "🍜", "🍝", "🥘", "🍗", "🥗", "🍰"},
			Bad:       []string{"🗑️", "🪳", "💀", "🧪"},
		},
		Interstitial: Message{
			Title: "¡ERES UN GRAN CHEF!",
			Body:  "CEVATUR PIURA ES LÍDER EN GASTRONOMÍA PERUANA CON 50 AÑOS FORMANDO LOS MEJORES CHEFS DEL NORTE. ¿QUIERES CONTINUAR PARA GANAR Y CONOCER NUESTRAS CARRERAS CULINARIAS?",
		},
	}
}

// DefaultBartenderConfig returns the default bartender configuration.
func DefaultBartenderConfig() BartenderConfig {
	return BartenderConfig{
		Ceiling: 30,
		Timing:  Timing{StepMS: 16, SpawnMS: 1000, EffectMS: 400},
		Crosshair: BartenderCrosshair{
			StartX:    50,
			StartY:    50,
			Bounds:    Range{Min: 5, Max: 95},
			KeyStep:   5,
			PopRadius: 10,
			Glyph:     "⊕",
		},
		Targets: BartenderTargets{
			MaxLive:     6,
			LeftX:       10,
			RightX:      90,
			Y:           Range{Min: 60, Max: 80},
			SpeedX:      Range{Min: 1.5, Max: 3},
			SpeedY:      Range{Min: 1.5, Max: 3},
			Scale:       0.5,
			BoundsX:     Range{Min: 5, Max: 95},
			BoundsY:     Range{Min: 5, Max: 80},
			Palette:     []string{"🍷", "🍸", "🍹", "🥃", "🍺", "🍾", "🥂"},
			EffectGlyph: "💥",
		},
		Interstitial: DefaultInterstitial,
	}
}

// DefaultCareersConfig returns the built-in career catalogue.
func DefaultCareersConfig() CareersConfig {
	const url = "https://cevaturpiura.edu.pe/Careers#careers"
	return CareersConfig{
		RotateMS: 12000,
		Careers: []Career{
			{ID: "aviation", Title: "Aviacion Comercial", Description: "Vuela alto y alcanza tus sueños en la aviación comercial", URL: url, Game: "aviation"},
			{ID: "chef", Title: "Chef Profesional", Description: "Domina el arte culinario y conviértete en un chef de clase mundial", URL: url, Game: "chef"},
			{ID: "bartender", Title: "Bartender Experto", Description: "Aprende el arte de la mixología y crea experiencias únicas", URL: url, Game: "bartender"},
		},
	}
}
