package reinfolib

import (
	"reinfolib-api/internal/models"

	"github.com/tidwall/gjson"
)

// Normalizers never fail. A body that does not hold a list yields an empty,
// non-nil slice and absent or malformed fields fall back to "" / 0 / [0,0].

const featureCollection = "FeatureCollection"

// unwrapList returns the items of a body, reading the "data" envelope when present.
func unwrapList(body gjson.Result) ([]gjson.Result, bool) {
	data := body
	if body.IsObject() {
		if d := body.Get("data"); truthy(d) {
			data = d
		}
	}
	if !data.IsArray() {
		return nil, false
	}
	return data.Array(), true
}

// features returns the features of a GeoJSON FeatureCollection body.
func features(body gjson.Result) ([]gjson.Result, bool) {
	if !body.IsObject() {
		return nil, false
	}
	fields := body.Map()
	if fields["type"].String() != featureCollection || !truthy(fields["features"]) {
		return nil, false
	}
	if !fields["features"].IsArray() {
		return []gjson.Result{}, true
	}
	return fields["features"].Array(), true
}

// NormalizeTransactions maps an XIT001 body to transactions.
func NormalizeTransactions(body gjson.Result) []models.Transaction {
	items, ok := unwrapList(body)
	out := make([]models.Transaction, 0, len(items))
	if !ok {
		return out
	}
	for _, item := range items {
		f := item.Map()
		out = append(out, models.Transaction{
			Type:                stringValue(f["Type"]),
			Region:              stringValue(f["Region"]),
			Municipality:        stringValue(f["Municipality"]),
			DistrictName:        stringValue(f["DistrictName"]),
			PricePerTsubo:       CoerceFloat(f["PricePerUnit"]),
			PricePerSquareMeter: CoerceFloat(f["UnitPrice"]),
			UnitPrice:           CoerceFloat(f["TradePrice"]),
			LandShape:           stringValue(f["LandShape"]),
			Frontage:            CoerceFloat(f["Frontage"]),
			TotalFloorArea:      CoerceFloat(f["Area"]),
			BuildingYear:        stringValue(f["BuildingYear"]),
			Structure:           stringValue(f["Structure"]),
			Use:                 stringValue(f["Use"]),
			Purpose:             stringValue(f["FloorPlan"]),
			Direction:           stringValue(f["Direction"]),
			Classification:      stringValue(f["Classification"]),
			Breadth:             CoerceFloat(f["Breadth"]),
			CityPlanning:        stringValue(f["CityPlanning"]),
			CoverageRatio:       stringValue(f["CoverageRatio"]),
			FloorAreaRatio:      stringValue(f["FloorAreaRatio"]),
			Year:                CoerceInt(f["Year"]),
			Quarter:             CoerceInt(f["Quarter"]),
			RenovationFlag:      stringValue(f["RenovationFlag"]),
			Remarks:             stringValue(f["Remarks"]),
		})
	}
	return out
}

// NormalizeMunicipalities maps an XIT002 body to municipalities of prefectureCode.
// An empty prefectureCode means Tokyo.
func NormalizeMunicipalities(body gjson.Result, prefectureCode string) []models.Municipality {
	items, ok := unwrapList(body)
	out := make([]models.Municipality, 0, len(items))
	if !ok {
		return out
	}
	if prefectureCode == "" {
		prefectureCode = DefaultPrefectureCode
	}
	prefectureName := PrefectureName(prefectureCode)
	for _, item := range items {
		f := item.Map()
		out = append(out, models.Municipality{
			PrefectureCode:   prefectureCode,
			PrefectureName:   prefectureName,
			MunicipalityCode: stringValue(f["id"]),
			MunicipalityName: stringValue(f["name"]),
		})
	}
	return out
}

// NormalizeAppraisals maps an XCT001 body to appraisals.
func NormalizeAppraisals(body gjson.Result) []models.Appraisal {
	items, ok := unwrapList(body)
	out := make([]models.Appraisal, 0, len(items))
	if !ok {
		return out
	}
	for _, item := range items {
		f := item.Map()
		prefectureCode := stringValue(f[AppraisalPrefectureCode])
		municipalityCode := stringValue(f[AppraisalMunicipalityCode])
		standardNumber := stringValue(f[AppraisalStandardNumber])

		address := stringValue(f[AppraisalAddressNumber])
		if address == "" {
			address = stringValue(f[AppraisalAddressDisplay])
		}

		out = append(out, models.Appraisal{
			PrefectureCode:           prefectureCode,
			PrefectureName:           PrefectureName(prefectureCode),
			MunicipalityCode:         municipalityCode,
			MunicipalityName:         stringValue(f[AppraisalMunicipalityName]),
			StandardNumber:           standardNumber,
			StandardLandNumber:       prefectureCode + "-" + municipalityCode + "-" + standardNumber,
			Address:                  address,
			LandUse:                  stringValue(f[AppraisalLandUse]),
			LandShape:                stringValue(f[AppraisalLandShape]),
			Frontage:                 CoerceFloat(f[AppraisalFrontage]),
			Depth:                    CoerceFloat(f[AppraisalDepth]),
			Area:                     CoerceFloat(f[AppraisalArea]),
			Year:                     CoerceInt(f[AppraisalYear]),
			Price:                    CoerceFloat(f[AppraisalPrice]),
			PricePerSquareMeter:      CoerceFloat(f[AppraisalPricePerSquare]),
			Attributes:               stringValue(f[AppraisalAttributes]),
			Surroundings:             stringValue(f[AppraisalSurroundings]),
			TransportationConditions: TransportationConditions(stringValue(f[AppraisalNearestStation]), stringValue(f[AppraisalStationDistance])),
			GasSupply:                utilityFlag(f[AppraisalGasSupply]),
			WaterSupply:              utilityFlag(f[AppraisalWaterSupply]),
			Sewerage:                 utilityFlag(f[AppraisalSewerage]),
		})
	}
	return out
}

// TransportationConditions renders the nearest station and its distance in metres.
func TransportationConditions(station, distance string) string {
	switch {
	case station == "" && distance == "":
		return ""
	case station == "":
		return distance + "m"
	case distance == "":
		return station + "駅"
	default:
		return station + "駅 " + distance + "m"
	}
}

func utilityFlag(v gjson.Result) string {
	if v.Type == gjson.String && v.Str == "1" {
		return utilityAvailable
	}
	return utilityNotAvailable
}

// NormalizeLandPricePoints maps an XPT002 body, GeoJSON or flat, to land price features.
func NormalizeLandPricePoints(body gjson.Result) []models.LandPricePoint {
	if feats, ok := features(body); ok {
		out := make([]models.LandPricePoint, 0, len(feats))
		for _, feat := range feats {
			f := feat.Map()
			out = append(out, models.LandPricePoint{
				Type:       featureType(f["type"]),
				Geometry:   featureGeometry(f["geometry"]),
				Properties: landPriceProperties(f["properties"].Map()),
			})
		}
		return out
	}

	items, ok := unwrapList(body)
	out := make([]models.LandPricePoint, 0, len(items))
	if !ok {
		return out
	}
	for _, item := range items {
		f := item.Map()
		out = append(out, models.LandPricePoint{
			Type:       "Feature",
			Geometry:   pointGeometry(f),
			Properties: landPriceProperties(f),
		})
	}
	return out
}

func landPriceProperties(p map[string]gjson.Result) models.LandPricePointProperties {
	return models.LandPricePointProperties{
		PointID:             stringValue(p["point_id"]),
		PrefectureName:      stringValue(p["prefecture_name_ja"]),
		CityCode:            stringValue(p["city_code"]),
		LandUseCategory:     stringValue(p["use_category_name_ja"]),
		CurrentPrice:        CoerceFloat(p["u_current_years_price_ja"]),
		YearOnYearChange:    CoerceFloat(p["year_on_year_change_rate"]),
		Address:             stringValue(p["standard_lot_number_ja"]),
		Year:                CoerceInt(p["target_year_name_ja"]),
		PriceClassification: stringValue(p["land_price_type"]),
		UseCategoryCode:     stringValue(p["use_category_name_ja"]),
		RegulatoryInfo:      stringValue(p["prefecture_code"]),
	}
}

// NormalizeRealEstatePricePoints maps an XPT001 body, GeoJSON or flat, to transaction price features.
func NormalizeRealEstatePricePoints(body gjson.Result) []models.RealEstatePricePoint {
	if feats, ok := features(body); ok {
		out := make([]models.RealEstatePricePoint, 0, len(feats))
		for _, feat := range feats {
			f := feat.Map()
			out = append(out, models.RealEstatePricePoint{
				Type:       featureType(f["type"]),
				Geometry:   featureGeometry(f["geometry"]),
				Properties: realEstatePriceProperties(f["properties"].Map()),
			})
		}
		return out
	}

	items, ok := unwrapList(body)
	out := make([]models.RealEstatePricePoint, 0, len(items))
	if !ok {
		return out
	}
	for _, item := range items {
		f := item.Map()
		out = append(out, models.RealEstatePricePoint{
			Type:       "Feature",
			Geometry:   pointGeometry(f),
			Properties: realEstatePriceProperties(f),
		})
	}
	return out
}

func realEstatePriceProperties(p map[string]gjson.Result) models.RealEstatePricePointProperties {
	return models.RealEstatePricePointProperties{
		TransactionID:       stringValue(p["district_code"]),
		PrefectureName:      stringValue(p["prefecture_name_ja"]),
		MunicipalityName:    stringValue(p["city_name_ja"]),
		DistrictName:        stringValue(p["district_name_ja"]),
		TransactionPrice:    CoerceFloat(p["u_transaction_price_total_ja"]),
		PricePerSquareMeter: CoerceFloat(p["u_transaction_price_unit_price_square_meter_ja"]),
		// upstream reports a single area; both fields carry it
		LandArea:            CoerceFloat(p["u_area_ja"]),
		BuildingArea:        CoerceFloat(p["u_area_ja"]),
		PropertyType:        stringValue(p["price_information_category_name_ja"]),
		BuildingStructure:   stringValue(p["structure_name_ja"]),
		BuildingAge:         CoerceInt(p["building_year_name_ja"]),
		TransactionDate:     stringValue(p["transaction_period_name_ja"]),
		PriceClassification: stringValue(p["price_information_category_name_ja"]),
		LandType:            stringValue(p["land_shape_name_ja"]),
		FloorPlan:           stringValue(p["floor_plan_name_ja"]),
		Remarks:             stringValue(p["purpose_name_ja"]),
	}
}

func featureType(v gjson.Result) string {
	if t := stringValue(v); t != "" {
		return t
	}
	return "Feature"
}

// featureGeometry passes a feature geometry through, defaulting to Point at [0,0].
func featureGeometry(v gjson.Result) models.Geometry {
	g := v.Map()
	geomType := stringValue(g["type"])
	if geomType == "" {
		geomType = "Point"
	}
	coordinates := []float64{0, 0}
	if c := g["coordinates"]; c.IsArray() {
		values := c.Array()
		coordinates = make([]float64, 0, len(values))
		for _, value := range values {
			coordinates = append(coordinates, CoerceFloat(value))
		}
	}
	return models.Geometry{Type: geomType, Coordinates: coordinates}
}

// pointGeometry synthesizes a Point from flat longitude/latitude fields.
func pointGeometry(f map[string]gjson.Result) models.Geometry {
	return models.Geometry{
		Type:        "Point",
		Coordinates: []float64{CoerceFloat(f["longitude"]), CoerceFloat(f["latitude"])},
	}
}
