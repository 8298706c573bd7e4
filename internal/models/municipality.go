package models

// Municipality pairs a prefecture with one of its municipalities (XIT002).
type Municipality struct {
	PrefectureCode   string `json:"prefectureCode"`
	PrefectureName   string `json:"prefectureName"`
	MunicipalityCode string `json:"municipalityCode"`
	MunicipalityName string `json:"municipalityName"`
}
