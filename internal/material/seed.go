package material

type seedRow struct {
	name                string
	conductivity        float64 // W/m·K
	diffusivity         float64 // mm²/s
	specificHeat        float64 // J/kg·K
	effusivity, density float64 // W·s^0.5/m²·K, kg/m³
}

// seedData is the dataset loaded into a fresh database.
var seedData = []seedRow{
	{"Air", 0.025, 19.4, 1004, 6, 1.29},
	{"Aluminum", 225.94, 91, 921, 23688, 2698},
	{"Copper", 397.48, 116, 385, 36983, 8940},
	{"Gold", 317.98, 129, 128, 28027, 19300},
	{"Iron", 71.965, 20.4, 448, 15924, 7870},
	{"Magnesium", 150.62, 86.2, 1004, 16221, 1740},
	{"Nitrogen", 0.026, 19.6, 1042, 6, 1.251},
	{"Platnium", 69.036, 24.1, 134, 14065, 21400},
	{"Plutonium", 8.201, 3.19, 134, 4592, 19200},
	{"High Density Ployethylene", 0.502, 0.23, 2301, 1048, 950},
	{"Medium Density Ployethylene", 0.414, 0.19, 2301, 944, 935},
	{"Low Density Ployethylene", 0.331, 0.17, 2092, 798, 920},
	{"Polycarbonate", 0.192, 0.09, 1674, 660, 1350},
	{"Rock", 1.757, 0.81, 837, 1955, 2600},
	{"Silver", 426.77, 172, 236, 32520, 10500},
	{"Soil", 0.837, 0.62, 1046, 1067, 1300},
	{"Steam", 0.023, 19.9, 1966, 5, 0.598},
	{"Stainless Steel", 22.928, 6.56, 460, 8955, 7600},
	{"Mild Steel", 41.84, 10.8, 502, 12760, 7750},
	{"Carbon Steel", 71.128, 19.7, 460, 16040, 7860},
	{"Titanium", 20.92, 8.89, 523, 7017, 4500},
	{"Tungsten", 196.65, 76.1, 134, 22543, 19300},
	{"Uranium", 26.443, 11.8, 117, 7694, 19100},
	{"Water", 0.603, 0.14, 4184, 1588, 1000},
	{"Ice", 2.092, 0.54, 4217, 2844, 917},
	{"Wood Spruce With Grain", 0.23, 0.45, 1255, 344, 410},
	{"Wood Spruce Across Grain", 0.126, 0.24, 1255, 254, 410},
	{"Wood Teak With Grain", 0.172, 0.12, 2301, 503, 640},
	{"Wood Teak Across Grain", 0.142, 0.12, 2301, 420, 540},
	{"Wood Fir Across Grain", 0.109, 0.11, 2301, 336, 450},
	{"Wood Pine Acrosse Grain", 0.13, 0.11, 2301, 398, 530},
	{"Wood Maple Across Grain", 0.176, 0.11, 2301, 536, 710},
}
