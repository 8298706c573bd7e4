package models

// Request parameter records shared by the tool, REST and client layers.
// Optional fields use omitempty and are left out of the upstream query when empty.

type TransactionSearchParams struct {
	Year                string `json:"year" form:"year" jsonschema:"pattern=^[0-9]{4}$" jsonschema_description:"Year for transaction data (YYYY format, e.g. \"2023\")"`
	Quarter             string `json:"quarter,omitempty" form:"quarter" jsonschema:"enum=1,enum=2,enum=3,enum=4" jsonschema_description:"Quarter (1-4): 1=Jan-Mar, 2=Apr-Jun, 3=Jul-Sep, 4=Oct-Dec"`
	Area                string `json:"area,omitempty" form:"area" jsonschema:"pattern=^[0-4][0-9]$" jsonschema_description:"Prefecture code: Tokyo=13, Osaka=27, Kanagawa=14, Saitama=11, Chiba=12, Aichi=23, Fukuoka=40, Hokkaido=01"`
	City                string `json:"city,omitempty" form:"city" jsonschema:"pattern=^[0-9]{5}$" jsonschema_description:"Municipal code (5-digit). Examples: Minato-ku Tokyo=13103, Shibuya-ku=13113, Shinjuku-ku=13104. Use get_municipalities to find codes."`
	Station             string `json:"station,omitempty" form:"station" jsonschema:"pattern=^[0-9]{6}$" jsonschema_description:"Station group code from National Land Numerical Information (N02_005g), e.g. Tokyo=001337, Shinjuku=001286"`
	StationName         string `json:"stationName,omitempty" form:"stationName" jsonschema_description:"Station name resolved to a station group code when station is not given (requires the station database)"`
	PriceClassification string `json:"priceClassification,omitempty" form:"priceClassification" jsonschema:"enum=01,enum=02" jsonschema_description:"Price classification (\"01\" for transaction price, \"02\" for successful price)"`
	Language            string `json:"language,omitempty" form:"language" jsonschema:"enum=ja,enum=en" jsonschema_description:"Output language (\"ja\" for Japanese, \"en\" for English)"`
}

type SearchParams struct {
	Prefecture   string   `json:"prefecture,omitempty" form:"prefecture" jsonschema_description:"Prefecture code (e.g. \"13\" for Tokyo)"`
	City         string   `json:"city,omitempty" form:"city" jsonschema_description:"City code"`
	Year         string   `json:"year,omitempty" form:"year" jsonschema_description:"Year for transaction data (YYYY format), defaults to current year"`
	MinPrice     *float64 `json:"minPrice,omitempty" form:"minPrice" jsonschema_description:"Minimum price"`
	MaxPrice     *float64 `json:"maxPrice,omitempty" form:"maxPrice" jsonschema_description:"Maximum price"`
	PropertyType string   `json:"propertyType,omitempty" form:"propertyType" jsonschema_description:"Property type as reported by the transaction data"`
	MinArea      *float64 `json:"minArea,omitempty" form:"minArea" jsonschema_description:"Minimum area in square meters"`
	MaxArea      *float64 `json:"maxArea,omitempty" form:"maxArea" jsonschema_description:"Maximum area in square meters"`
}

type MunicipalityListParams struct {
	PrefectureCode string `json:"prefectureCode" form:"prefectureCode" jsonschema:"pattern=^[0-4][0-9]$" jsonschema_description:"Prefecture code: Tokyo=13, Osaka=27, Kanagawa=14, Saitama=11, Chiba=12, Aichi=23, Fukuoka=40, Hokkaido=01"`
}

type AppraisalSearchParams struct {
	Year     string `json:"year" form:"year" jsonschema:"pattern=^(2021|2022|2023|2024|2025)$" jsonschema_description:"Year for appraisal data (2021-2025, YYYY format)"`
	Area     string `json:"area" form:"area" jsonschema:"pattern=^[0-4][0-9]$" jsonschema_description:"Prefecture code: Tokyo=13, Osaka=27, Kanagawa=14, Saitama=11, Chiba=12, Aichi=23, Fukuoka=40, Hokkaido=01"`
	Division string `json:"division" form:"division" jsonschema:"enum=00,enum=03,enum=05,enum=07,enum=09,enum=10,enum=13,enum=20" jsonschema_description:"Land use: 00=Residential(住宅地), 05=Commercial(商業地), 07=Semi-Industrial(準工業地), 09=Industrial(工業地), 10=Adjustment Zone(市街化調整区域)"`
	Language string `json:"language,omitempty" form:"language" jsonschema:"enum=ja,enum=en" jsonschema_description:"Output language (\"ja\" for Japanese, \"en\" for English)"`
}

type LandPricePointSearchParams struct {
	ResponseFormat      string `json:"response_format,omitempty" form:"response_format" jsonschema:"enum=geojson,enum=pbf,default=geojson" jsonschema_description:"Response format (\"geojson\" for GeoJSON, \"pbf\" for vector tiles)"`
	Z                   int    `json:"z" form:"z" jsonschema:"minimum=11,maximum=15" jsonschema_description:"Zoom level (11-15). Higher zoom = more detailed area coverage."`
	X                   int    `json:"x" form:"x" jsonschema:"minimum=0" jsonschema_description:"Tile coordinate X (horizontal position)"`
	Y                   int    `json:"y" form:"y" jsonschema:"minimum=0" jsonschema_description:"Tile coordinate Y (vertical position)"`
	Year                string `json:"year,omitempty" form:"year" jsonschema:"pattern=^(19[0-9]{2}|20[0-2][0-9])$" jsonschema_description:"Year for land price data (1995-2024, YYYY format)"`
	PriceClassification string `json:"priceClassification,omitempty" form:"priceClassification" jsonschema:"enum=0,enum=1" jsonschema_description:"Price classification (\"0\" for national land price notices, \"1\" for prefectural land price surveys)"`
	UseCategoryCode     string `json:"useCategoryCode,omitempty" form:"useCategoryCode" jsonschema_description:"Land use category code (e.g. residential, commercial, industrial areas)"`
}

type RealEstatePricePointSearchParams struct {
	ResponseFormat      string `json:"response_format,omitempty" form:"response_format" jsonschema:"enum=geojson,enum=pbf,default=geojson" jsonschema_description:"Response format (\"geojson\" for GeoJSON, \"pbf\" for vector tiles)"`
	Z                   int    `json:"z" form:"z" jsonschema:"minimum=11,maximum=15" jsonschema_description:"Zoom level (11-15). Higher zoom = more detailed area coverage."`
	X                   int    `json:"x" form:"x" jsonschema:"minimum=0" jsonschema_description:"Tile coordinate X (horizontal position)"`
	Y                   int    `json:"y" form:"y" jsonschema:"minimum=0" jsonschema_description:"Tile coordinate Y (vertical position)"`
	From                string `json:"from" form:"from" jsonschema:"pattern=^\\d{5}$" jsonschema_description:"Transaction period start (YYYYN format, e.g. \"20201\" for 2020 Q1, \"20053\" minimum)"`
	To                  string `json:"to" form:"to" jsonschema:"pattern=^\\d{5}$" jsonschema_description:"Transaction period end (YYYYN format, e.g. \"20244\" for 2024 Q4)"`
	PriceClassification string `json:"priceClassification,omitempty" form:"priceClassification" jsonschema_description:"Price classification for filtering transaction types"`
	LandTypeCode        string `json:"landTypeCode,omitempty" form:"landTypeCode" jsonschema_description:"Land type code for filtering by land classification"`
}

type StationSearchParams struct {
	Query string `json:"query" form:"q" jsonschema:"minLength=1" jsonschema_description:"Station name or code fragment"`
}
