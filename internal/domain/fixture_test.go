package domain_test

import "github.com/luxura/luxura/internal/domain"

// testCatalog is a trimmed copy of the built-in catalog.
func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Models: []domain.Model{
			{ID: "lamborghini-aventador", Name: "Aventador SVJ", Series: "Lamborghini", BasePrice: 573966},
			{ID: "bugatti-chiron", Name: "Chiron Super Sport", Series: "Bugatti", BasePrice: 3900000},
			{ID: "porsche-911-gt3", Name: "911 GT3 RS", Series: "Porsche", BasePrice: 223800},
		},
		Colors: []domain.ColorOption{
			{ID: "black-diamond", Name: "Black Diamond", Hex: "#0a0a0a", Finish: domain.FinishMetallic},
			{ID: "arctic-white", Name: "Arctic White", Hex: "#f5f5f5", Finish: domain.FinishSolid},
			{ID: "champagne-rose", Name: "Champagne Rosé", Hex: "#d4a574", Finish: domain.FinishSpecial, Price: 12000},
			{ID: "midnight-sapphire", Name: "Midnight Sapphire", Hex: "#1a237e", Finish: domain.FinishMetallic, Price: 5500},
		},
		Wheels: []domain.WheelOption{
			{ID: "standard-22", Name: "Standard", Size: `22"`, Color: "#9ca3af"},
			{ID: "forged-23", Name: "Forged", Size: `23"`, Price: 8500, Color: "#e5e7eb"},
		},
		Interiors: []domain.InteriorOption{
			{ID: "obsidian", Name: "Obsidian Black", Color: "#1a1a1a", Accent: "#d4a574"},
			{ID: "cognac", Name: "Cognac", Color: "#8b4513", Accent: "#2d1810", Price: 7500},
		},
		Accessories: []domain.AccessoryOption{
			{ID: "carbon-aero", Name: "Full Carbon Aero Package", Category: "Aerodynamics", Price: 45000},
			{ID: "ceramic-brakes", Name: "Carbon Ceramic Brakes", Category: "Performance", Price: 35000},
			{ID: "racing-harness", Name: "6-Point Racing Harness", Category: "Safety", Price: 8500},
			{ID: "lightweight-wheels", Name: "Forged Magnesium Wheels", Category: "Performance", Price: 38000},
			{ID: "fire-system", Name: "Fire Suppression System", Category: "Safety", Price: 9500},
		},
		Steps: []domain.Step{
			{ID: domain.StepModel, Label: "Model"},
			{ID: domain.StepExterior, Label: "Exterior"},
			{ID: domain.StepWheels, Label: "Wheels"},
			{ID: domain.StepInterior, Label: "Interior"},
			{ID: domain.StepAccessories, Label: "Bespoke"},
			{ID: domain.StepSummary, Label: "Summary"},
		},
	}
}
