package models

// Geometry is a GeoJSON geometry. Coordinates are [lng, lat] for points.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// LandPricePoint is a GeoJSON feature for a land price survey point (XPT002).
type LandPricePoint struct {
	Type       string                   `json:"type"`
	Geometry   Geometry                 `json:"geometry"`
	Properties LandPricePointProperties `json:"properties"`
}

type LandPricePointProperties struct {
	PointID             string  `json:"pointId"`
	PrefectureName      string  `json:"prefectureName"`
	CityCode            string  `json:"cityCode"`
	LandUseCategory     string  `json:"landUseCategory"`
	CurrentPrice        float64 `json:"currentPrice"`
	YearOnYearChange    float64 `json:"yearOnYearChange"`
	Address             string  `json:"address"`
	Year                int     `json:"year"`
	PriceClassification string  `json:"priceClassification"`
	UseCategoryCode     string  `json:"useCategoryCode"`
	RegulatoryInfo      string  `json:"regulatoryInfo"`
}

// RealEstatePricePoint is a GeoJSON feature for a transaction price point (XPT001).
type RealEstatePricePoint struct {
	Type       string                         `json:"type"`
	Geometry   Geometry                       `json:"geometry"`
	Properties RealEstatePricePointProperties `json:"properties"`
}

type RealEstatePricePointProperties struct {
	TransactionID       string  `json:"transactionId"`
	PrefectureName      string  `json:"prefectureName"`
	MunicipalityName    string  `json:"municipalityName"`
	DistrictName        string  `json:"districtName"`
	TransactionPrice    float64 `json:"transactionPrice"`
	PricePerSquareMeter float64 `json:"pricePerSquareMeter"`
	LandArea            float64 `json:"landArea"`
	BuildingArea        float64 `json:"buildingArea"`
	PropertyType        string  `json:"propertyType"`
	BuildingStructure   string  `json:"buildingStructure"`
	BuildingAge         int     `json:"buildingAge"`
	TransactionDate     string  `json:"transactionDate"`
	PriceClassification string  `json:"priceClassification"`
	LandType            string  `json:"landType"`
	FloorPlan           string  `json:"floorPlan"`
	Remarks             string  `json:"remarks"`
}
