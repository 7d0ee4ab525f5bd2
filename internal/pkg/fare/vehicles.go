package fare

import "github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"

// vehicleCatalog is static display metadata per class, used only to decorate
// fare results
var vehicleCatalog = map[models.VehicleClass]models.VehicleInfo{
	models.VehicleHatchback: {
		Class:       models.VehicleHatchback,
		DisplayName: "Hatchback",
		Seats:       4,
		Luggage:     2,
		Examples:    []string{"Wagon R", "Celerio"},
	},
	models.VehicleSedan: {
		Class:       models.VehicleSedan,
		DisplayName: "Sedan",
		Seats:       4,
		Luggage:     3,
		Examples:    []string{"Dzire", "Aura", "Etios"},
	},
	models.VehicleSUV: {
		Class:       models.VehicleSUV,
		DisplayName: "SUV",
		Seats:       6,
		Luggage:     4,
		Examples:    []string{"Ertiga", "Marazzo"},
	},
	models.VehicleSUVPlus: {
		Class:       models.VehicleSUVPlus,
		DisplayName: "SUV+",
		Seats:       6,
		Luggage:     4,
		Examples:    []string{"Innova", "Innova Crysta"},
	},
	models.VehiclePremium: {
		Class:       models.VehiclePremium,
		DisplayName: "Premium",
		Seats:       4,
		Luggage:     3,
		Examples:    []string{"Camry", "Superb"},
	},
	models.VehicleTraveller12: {
		Class:       models.VehicleTraveller12,
		DisplayName: "Tempo Traveller 12",
		Seats:       12,
		Luggage:     10,
	},
	models.VehicleTraveller16: {
		Class:       models.VehicleTraveller16,
		DisplayName: "Tempo Traveller 16",
		Seats:       16,
		Luggage:     12,
	},
}

// VehicleInfo returns catalog metadata for a class. Unknown classes get a
// bare entry rather than an error; the catalog only decorates results.
func VehicleInfo(class models.VehicleClass) models.VehicleInfo {
	if info, ok := vehicleCatalog[class]; ok {
		return info
	}
	return models.VehicleInfo{Class: class, DisplayName: string(class)}
}
