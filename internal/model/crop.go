package model

type CropGuide struct {
	NameKey     string
	DiseaseKeys []string
	CareKey     string
	Icon        string
}

// CropCatalog is the static crop-care reference served by /crop-care. Keys
// are translation identifiers resolved by the frontend.
var CropCatalog = []CropGuide{
	{
		NameKey:     "wheat_name",
		DiseaseKeys: []string{"wheat_d1", "wheat_d2"},
		CareKey:     "wheat_care",
		Icon:        "fa-wheat-awn",
	},
	{
		NameKey:     "rice_name",
		DiseaseKeys: []string{"rice_d1", "rice_d2"},
		CareKey:     "rice_care",
		Icon:        "fa-seedling",
	},
	{
		NameKey:     "cotton_name",
		DiseaseKeys: []string{"cotton_d1", "cotton_d2"},
		CareKey:     "cotton_care",
		Icon:        "fa-cloud",
	},
	{
		NameKey:     "soya_name",
		DiseaseKeys: []string{"soya_d1", "soya_d2"},
		CareKey:     "soya_care",
		Icon:        "fa-leaf",
	},
	{
		NameKey:     "corn_name",
		DiseaseKeys: []string{"corn_d1", "corn_d2"},
		CareKey:     "corn_care",
		Icon:        "fa-sun",
	},
	{
		NameKey:     "cane_name",
		DiseaseKeys: []string{"cane_d1", "cane_d2"},
		CareKey:     "cane_care",
		Icon:        "fa-cubes-stacked",
	},
	{
		NameKey:     "sun_name",
		DiseaseKeys: []string{"sun_d1", "sun_d2"},
		CareKey:     "sun_care",
		Icon:        "fa-sun",
	},
}
