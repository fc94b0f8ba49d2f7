package commerce

import "github.com/example/agrimart/pkg/models"

// seedCatalog is the fixed default product set written on first run:
// 18 products across the 5 categories.
func seedCatalog() []models.Product {
	return []models.Product{
		// Seeds
		{ID: "s1", Name: "Premium Bt Cotton Seeds (High Yield)", Category: models.CategorySeeds, Price: "850", Image: "https://images.unsplash.com/photo-1594752494917-a781f727829a?auto=format&fit=crop&q=80&w=400", Description: "Advanced Bt technology for pest resistance and superior fiber quality.", Stock: 240},
		{ID: "s2", Name: "Soyabean Hybrid Seeds (JS-335)", Category: models.CategorySeeds, Price: "3200", Image: "https://images.unsplash.com/photo-1592982537447-7440770cbfc9?auto=format&fit=crop&q=80&w=400", Description: "High protein content and drought resistant variety.", Stock: 150},
		{ID: "s3", Name: "Hybrid Maize Gold-66", Category: models.CategorySeeds, Price: "1200", Image: "https://images.unsplash.com/photo-1551733979-9cb61c0eaa48?auto=format&fit=crop&q=80&w=400", Description: "Large grain size, perfect for cattle feed and industrial use.", Stock: 80},
		{ID: "s4", Name: "Hybrid Onion Seeds (Pusa Red)", Category: models.CategorySeeds, Price: "1450", Image: "https://images.unsplash.com/photo-1618512496248-a07fe83aa8cb?auto=format&fit=crop&q=80&w=400", Description: "Long shelf life, uniform bulbs, ideal for Kharif/Rabi.", Stock: 120},
		{ID: "s5", Name: "Hybrid Chili Seeds (Teja-4)", Category: models.CategorySeeds, Price: "620", Image: "https://images.unsplash.com/photo-1588252303782-cb80119abd6d?auto=format&fit=crop&q=80&w=400", Description: "Hot spicy variety with deep red color, ideal for exports.", Stock: 110},

		// Fertilizers
		{ID: "f1", Name: "NPK Fertilizer (19:19:19)", Category: models.CategoryFertilizers, Price: "450", Image: "https://images.unsplash.com/photo-1585314062340-f1a5a7c9328d?auto=format&fit=crop&q=80&w=400", Description: "Water-soluble balanced fertilizer for all-round growth.", Stock: 500},
		{ID: "f2", Name: "DAP (Diammonium Phosphate)", Category: models.CategoryFertilizers, Price: "1350", Image: "https://images.unsplash.com/photo-1628352081506-83c43123ed6d?auto=format&fit=crop&q=80&w=400", Description: "Excellent source of Phosphorus and Nitrogen for early growth.", Stock: 200},
		{ID: "f3", Name: "Nano Urea (Liquid) - 500ml", Category: models.CategoryFertilizers, Price: "240", Image: "https://images.unsplash.com/photo-1592890678914-71018579a952?auto=format&fit=crop&q=80&w=400", Description: "Revolutionary high-efficiency urea for foliar spray.", Stock: 450},
		{ID: "f4", Name: "Bio-Potash Organic Booster", Category: models.CategoryFertilizers, Price: "580", Image: "https://images.unsplash.com/photo-1585314062340-f1a5a7c9328d?auto=format&fit=crop&q=80&w=400", Description: "Increases fruit size and sweetness naturally.", Stock: 180},

		// Irrigation
		{ID: "i1", Name: "Drip Irrigation Kit (1 Acre)", Category: models.CategoryIrrigation, Price: "12500", Image: "https://images.unsplash.com/photo-1590682680375-393475d83637?auto=format&fit=crop&q=80&w=400", Description: "Complete drip system with filters, pipes, and emitters.", Stock: 45},
		{ID: "i2", Name: "Submersible Water Pump (5HP)", Category: models.CategoryIrrigation, Price: "18900", Image: "https://images.unsplash.com/photo-1622322062602-0c30f40f0c00?auto=format&fit=crop&q=80&w=400", Description: "Heavy-duty copper winding motor for deep wells.", Stock: 15},
		{ID: "i3", Name: "Automated Fogger System", Category: models.CategoryIrrigation, Price: "3400", Image: "https://images.unsplash.com/photo-1558449028-b53a39d100fc?auto=format&fit=crop&q=80&w=400", Description: "Ideal for greenhouses and high-value nurseries.", Stock: 30},

		// Equipment
		{ID: "e1", Name: "Battery Operated Sprayer (16L)", Category: models.CategoryEquipment, Price: "2800", Image: "https://images.unsplash.com/photo-1530507629858-e4977d30e9e0?auto=format&fit=crop&q=80&w=400", Description: "Rechargeable, long-lasting battery with 4-nozzle set.", Stock: 65},
		{ID: "e2", Name: "Power Tiller (Petrol 7HP)", Category: models.CategoryEquipment, Price: "42500", Image: "https://images.unsplash.com/photo-1595113316349-9fa4ee24f884?auto=format&fit=crop&q=80&w=400", Description: "Compact and powerful tiller for inter-cultivation and weeding.", Stock: 8},
		{ID: "e3", Name: "Handheld Soil pH Meter", Category: models.CategoryEquipment, Price: "850", Image: "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?auto=format&fit=crop&q=80&w=400", Description: "Instant reading of soil pH and moisture levels.", Stock: 40},

		// Organic
		{ID: "o1", Name: "Cold-Pressed Neem Oil (1L)", Category: models.CategoryOrganic, Price: "480", Image: "https://images.unsplash.com/photo-1615485240314-10037ca06180?auto=format&fit=crop&q=80&w=400", Description: "Natural pest deterrent and antifungal agent.", Stock: 85},
		{ID: "o2", Name: "Premium Vermicompost (40kg)", Category: models.CategoryOrganic, Price: "450", Image: "https://images.unsplash.com/photo-1585314062340-f1a5a7c9328d?auto=format&fit=crop&q=80&w=400", Description: "Pure earthworm compost for soil rejuvenation.", Stock: 100},
		{ID: "o3", Name: "Pheromone Trap (Set of 5)", Category: models.CategoryOrganic, Price: "550", Image: "https://images.unsplash.com/photo-1595113316349-9fa4ee24f884?auto=format&fit=crop&q=80&w=400", Description: "Eco-friendly monitoring for Pink Bollworm and Fruit Fly.", Stock: 200},
	}
}
