package models

// Transaction is a single real-estate transaction price record (XIT001).
type Transaction struct {
	Type                string  `json:"type"`
	Region              string  `json:"region"`
	Municipality        string  `json:"municipality"`
	DistrictName        string  `json:"districtName"`
	PricePerTsubo       float64 `json:"pricePerTsubo"`
	PricePerSquareMeter float64 `json:"pricePerSquareMeter"`
	UnitPrice           float64 `json:"unitPrice"`
	LandShape           string  `json:"landShape"`
	Frontage            float64 `json:"frontage"`
	TotalFloorArea      float64 `json:"totalFloorArea"`
	BuildingYear        string  `json:"buildingYear"`
	Structure           string  `json:"structure"`
	Use                 string  `json:"use"`
	Purpose             string  `json:"purpose"`
	Direction           string  `json:"direction"`
	Classification      string  `json:"classification"`
	Breadth             float64 `json:"breadth"`
	CityPlanning        string  `json:"cityPlanning"`
	CoverageRatio       string  `json:"coverageRatio"`
	FloorAreaRatio      string  `json:"floorAreaRatio"`
	Year                int     `json:"year"`
	Quarter             int     `json:"quarter"`
	RenovationFlag      string  `json:"renovationFlag"`
	Remarks             string  `json:"remarks"`
}

// Property is the generic property view derived from a Transaction.
type Property struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	PropertyType string  `json:"propertyType"`
	Area         float64 `json:"area"`
	BuildingAge  int     `json:"buildingAge"`
	Description  string  `json:"description"`
}
