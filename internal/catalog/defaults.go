package catalog

import "github.com/aminegames/gamekiosk/internal/domain"

// DefaultGamesData is the fallback catalog used when the seed document
// cannot be loaded.
func DefaultGamesData() domain.GamesData {
	return domain.GamesData{
		Games: []domain.Game{
			{
				ID: 1, Name: "God of War Ragnarök", Platform: "PS5",
				Category: "Action-Aventure", Price: 300, Stock: 5,
				Popularity: 95, Image: "god-of-war.jpg",
				Description: "Jeu d'action-aventure épique",
			},
			{
				ID: 2, Name: "FIFA 23", Platform: "PS5",
				Category: "Sport", Price: 250, Stock: 8,
				Popularity: 88, Image: "fifa-23.jpg",
				Description: "Jeu de football",
			},
			{
				ID: 3, Name: "Halo Infinite", Platform: "XBOX Series",
				Category: "FPS", Price: 280, Stock: 6,
				Popularity: 82, Image: "halo-infinite.jpg",
				Description: "Jeu de tir",
			},
			{
				ID: 4, Name: "The Legend of Zelda: Tears of the Kingdom", Platform: "Switch",
				Category: "Action-Aventure", Price: 320, Stock: 4,
				Popularity: 97, Image: "zelda-totk.jpg",
				Description: "Aventure en monde ouvert",
			},
		},
		Categories: DefaultCategories(),
	}
}

// DefaultCategories are the platform navigation tabs.
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{ID: "PS5", Name: "PlayStation 5", Icon: "fab fa-playstation", Color: "#003791"},
		{ID: "PS4", Name: "PlayStation 4", Icon: "fab fa-playstation", Color: "#0066cc"},
		{ID: "XBOX Series", Name: "XBOX Series", Icon: "fab fa-xbox", Color: "#107c10"},
		{ID: "Switch", Name: "Nintendo Switch", Icon: "fas fa-gamepad", Color: "#e60012"},
	}
}
