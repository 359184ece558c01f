package taxengine

// 2025 canton tax rates, Federal Tax Administration (FTA) published figures.
var defaultCantons = []CantonRates{
	{
		Code:                   "AG",
		Name:                   "Aargau",
		Names:                  CantonNames{DE: "Aargau", FR: "Argovie", IT: "Argovia", EN: "Aargau"},
		CorporateIncomeTaxRate: 6.72,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.15,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "AI",
		Name:                   "Appenzell Innerrhoden",
		Names:                  CantonNames{DE: "Appenzell Innerrhoden", FR: "Appenzell Rhodes-Intérieures", IT: "Appenzello Interno", EN: "Appenzell Innerrhoden"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.0,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "AR",
		Name:                   "Appenzell Ausserrhoden",
		Names:                  CantonNames{DE: "Appenzell Ausserrhoden", FR: "Appenzell Rhodes-Extérieures", IT: "Appenzello Esterno", EN: "Appenzell Ausserrhoden"},
		CorporateIncomeTaxRate: 6.6,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.08,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "BE",
		Name:                   "Bern",
		Names:                  CantonNames{DE: "Bern", FR: "Berne", IT: "Berna", EN: "Bern"},
		CorporateIncomeTaxRate: 6.96,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.54,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "BL",
		Name:                   "Basel-Landschaft",
		Names:                  CantonNames{DE: "Basel-Landschaft", FR: "Bâle-Campagne", IT: "Basilea Campagna", EN: "Basel-Landschaft"},
		CorporateIncomeTaxRate: 6.84,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.2,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "BS",
		Name:                   "Basel-Stadt",
		Names:                  CantonNames{DE: "Basel-Stadt", FR: "Bâle-Ville", IT: "Basilea Città", EN: "Basel-Stadt"},
		CorporateIncomeTaxRate: 6.99,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.0,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "FR",
		Name:                   "Fribourg",
		Names:                  CantonNames{DE: "Freiburg", FR: "Fribourg", IT: "Friburgo", EN: "Fribourg"},
		CorporateIncomeTaxRate: 6.79,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.2,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "GE",
		Name:                   "Geneva",
		Names:                  CantonNames{DE: "Genf", FR: "Genève", IT: "Ginevra", EN: "Geneva"},
		CorporateIncomeTaxRate: 6.18,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    0.455,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "GL",
		Name:                   "Glarus",
		Names:                  CantonNames{DE: "Glarus", FR: "Glaris", IT: "Glarona", EN: "Glarus"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.2,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "GR",
		Name:                   "Graubünden",
		Names:                  CantonNames{DE: "Graubünden", FR: "Grisons", IT: "Grigioni", EN: "Graubünden"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.25,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "JU",
		Name:                   "Jura",
		Names:                  CantonNames{DE: "Jura", FR: "Jura", IT: "Giura", EN: "Jura"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.2,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "LU",
		Name:                   "Lucerne",
		Names:                  CantonNames{DE: "Luzern", FR: "Lucerne", IT: "Lucerna", EN: "Lucerne"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.6,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "NE",
		Name:                   "Neuchâtel",
		Names:                  CantonNames{DE: "Neuenburg", FR: "Neuchâtel", IT: "Neuchâtel", EN: "Neuchâtel"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    0.68,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "NW",
		Name:                   "Nidwalden",
		Names:                  CantonNames{DE: "Nidwalden", FR: "Nidwald", IT: "Nidvaldo", EN: "Nidwalden"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.0,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "OW",
		Name:                   "Obwalden",
		Names:                  CantonNames{DE: "Obwalden", FR: "Obwald", IT: "Obvaldo", EN: "Obwalden"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.0,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "SG",
		Name:                   "St. Gallen",
		Names:                  CantonNames{DE: "St. Gallen", FR: "Saint-Gall", IT: "San Gallo", EN: "St. Gallen"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.25,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "SH",
		Name:                   "Schaffhausen",
		Names:                  CantonNames{DE: "Schaffhausen", FR: "Schaffhouse", IT: "Sciaffusa", EN: "Schaffhausen"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.25,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "SO",
		Name:                   "Solothurn",
		Names:                  CantonNames{DE: "Solothurn", FR: "Soleure", IT: "Soletta", EN: "Solothurn"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.25,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "SZ",
		Name:                   "Schwyz",
		Names:                  CantonNames{DE: "Schwyz", FR: "Schwytz", IT: "Svitto", EN: "Schwyz"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.0,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "TG",
		Name:                   "Thurgau",
		Names:                  CantonNames{DE: "Thurgau", FR: "Thurgovie", IT: "Turgovia", EN: "Thurgau"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.2,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "TI",
		Name:                   "Ticino",
		Names:                  CantonNames{DE: "Tessin", FR: "Tessin", IT: "Ticino", EN: "Ticino"},
		CorporateIncomeTaxRate: 8.84,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.0,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "UR",
		Name:                   "Uri",
		Names:                  CantonNames{DE: "Uri", FR: "Uri", IT: "Uri", EN: "Uri"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.0,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "VD",
		Name:                   "Vaud",
		Names:                  CantonNames{DE: "Waadt", FR: "Vaud", IT: "Vaud", EN: "Vaud"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    0.64,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "VS",
		Name:                   "Valais",
		Names:                  CantonNames{DE: "Wallis", FR: "Valais", IT: "Vallese", EN: "Valais"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.0,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "ZG",
		Name:                   "Zug",
		Names:                  CantonNames{DE: "Zug", FR: "Zoug", IT: "Zugo", EN: "Zug"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    0.76,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
	{
		Code:                   "ZH",
		Name:                   "Zurich",
		Names:                  CantonNames{DE: "Zürich", FR: "Zurich", IT: "Zurigo", EN: "Zurich"},
		CorporateIncomeTaxRate: 6.5,
		CapitalTaxRate:         0.001,
		MunicipalMultiplier:    1.19,
		VATThreshold:           100000,
		FederalTaxRate:         8.5,
	},
}

// DefaultRateTable returns the bundled 2025 rate table.
func DefaultRateTable() *RateTable {
	t, err := NewRateTable(defaultCantons)
	if err != nil {
		panic("taxengine: invalid bundled rate table: " + err.Error())
	}
	return t
}
