package models

// Appraisal is the valuation of a standard land point from the public land price notice (XCT001).
type Appraisal struct {
	PrefectureCode           string  `json:"prefectureCode"`
	PrefectureName           string  `json:"prefectureName"`
	MunicipalityCode         string  `json:"municipalityCode"`
	MunicipalityName         string  `json:"municipalityName"`
	StandardNumber           string  `json:"standardNumber"`
	StandardLandNumber       string  `json:"standardLandNumber"`
	Address                  string  `json:"address"`
	LandUse                  string  `json:"landUse"`
	LandShape                string  `json:"landShape"`
	Frontage                 float64 `json:"frontage"`
	Depth                    float64 `json:"depth"`
	Area                     float64 `json:"area"`
	Year                     int     `json:"year"`
	Price                    float64 `json:"price"`
	PricePerSquareMeter      float64 `json:"pricePerSquareMeter"`
	Attributes               string  `json:"attributes"`
	Surroundings             string  `json:"surroundings"`
	TransportationConditions string  `json:"transportationConditions"`
	GasSupply                string  `json:"gasSupply"`
	WaterSupply              string  `json:"waterSupply"`
	Sewerage                 string  `json:"sewerage"`
}
