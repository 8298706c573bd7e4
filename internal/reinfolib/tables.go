package reinfolib

// UnknownPrefecture is the name returned for codes outside PrefectureCodes.
const UnknownPrefecture = "不明"

// DefaultPrefectureCode is Tokyo, used when a caller gives no prefecture.
const DefaultPrefectureCode = "13"

// PrefectureCodes maps two-digit JIS prefecture codes to their names.
var PrefectureCodes = map[string]string{
	"01": "北海道",
	"02": "青森県",
	"03": "岩手県",
	"04": "宮城県",
	"05": "秋田県",
	"06": "山形県",
	"07": "福島県",
	"08": "茨城県",
	"09": "栃木県",
	"10": "群馬県",
	"11": "埼玉県",
	"12": "千葉県",
	"13": "東京都",
	"14": "神奈川県",
	"15": "新潟県",
	"16": "富山県",
	"17": "石川県",
	"18": "福井県",
	"19": "山梨県",
	"20": "長野県",
	"21": "岐阜県",
	"22": "静岡県",
	"23": "愛知県",
	"24": "三重県",
	"25": "滋賀県",
	"26": "京都府",
	"27": "大阪府",
	"28": "兵庫県",
	"29": "奈良県",
	"30": "和歌山県",
	"31": "鳥取県",
	"32": "島根県",
	"33": "岡山県",
	"34": "広島県",
	"35": "山口県",
	"36": "徳島県",
	"37": "香川県",
	"38": "愛媛県",
	"39": "高知県",
	"40": "福岡県",
	"41": "佐賀県",
	"42": "長崎県",
	"43": "熊本県",
	"44": "大分県",
	"45": "宮崎県",
	"46": "鹿児島県",
	"47": "沖縄県",
}

// PrefectureName resolves a prefecture code, returning UnknownPrefecture when absent.
func PrefectureName(code string) string {
	if name, ok := PrefectureCodes[code]; ok {
		return name
	}
	return UnknownPrefecture
}

// LandUseDivisions are the accepted division codes of the appraisal search.
var LandUseDivisions = map[string]string{
	"00": "住宅地",
	"03": "宅地見込地",
	"05": "商業地",
	"07": "準工業地",
	"09": "工業地",
	"10": "市街化調整区域",
	"13": "林地",
	"20": "林地（都道府県）",
}

// IsLandUseDivision reports whether code is a known land-use division.
func IsLandUseDivision(code string) bool {
	_, ok := LandUseDivisions[code]
	return ok
}

// FieldMapping is one upstream field name and the canonical name it maps to.
type FieldMapping struct {
	Upstream  string
	Canonical string
}

// TransactionFieldMappings documents how XIT001 fields map onto models.Transaction.
var TransactionFieldMappings = []FieldMapping{
	{"Type", "type"},
	{"Region", "region"},
	{"Municipality", "municipality"},
	{"DistrictName", "districtName"},
	{"PricePerUnit", "pricePerTsubo"},
	{"UnitPrice", "pricePerSquareMeter"},
	{"TradePrice", "unitPrice"},
	{"LandShape", "landShape"},
	{"Frontage", "frontage"},
	{"Area", "totalFloorArea"},
	{"BuildingYear", "buildingYear"},
	{"Structure", "structure"},
	{"Use", "use"},
	{"FloorPlan", "purpose"},
	{"Direction", "direction"},
	{"Classification", "classification"},
	{"Breadth", "breadth"},
	{"CityPlanning", "cityPlanning"},
	{"CoverageRatio", "coverageRatio"},
	{"FloorAreaRatio", "floorAreaRatio"},
	{"Year", "year"},
	{"Quarter", "quarter"},
	{"RenovationFlag", "renovationFlag"},
	{"Remarks", "remarks"},
}

// Appraisal (XCT001) field labels. They contain spaces and are matched verbatim.
const (
	AppraisalPrefectureCode   = "標準地番号 市区町村コード 県コード"
	AppraisalMunicipalityCode = "標準地番号 市区町村コード 市区町村コード"
	AppraisalStandardNumber   = "標準地番号 連番"
	AppraisalMunicipalityName = "標準地番号 地域名"
	AppraisalAddressNumber    = "標準地 所在地 所在地番"
	AppraisalAddressDisplay   = "標準地 所在地 住居表示"
	AppraisalLandUse          = "標準地番号 用途区分"
	AppraisalLandShape        = "標準地 形状 形状"
	AppraisalFrontage         = "標準地 形状 形状比 間口"
	AppraisalDepth            = "標準地 形状 形状比 奥行"
	AppraisalArea             = "標準地 地積 地積"
	AppraisalYear             = "価格時点"
	AppraisalPrice            = "公示価格"
	AppraisalPricePerSquare   = "1㎡当たりの価格"
	AppraisalAttributes       = "標準地 土地利用の現況 現況"
	AppraisalSurroundings     = "標準地 周辺の利用状況"
	AppraisalNearestStation   = "標準地 交通施設の状況 交通施設"
	AppraisalStationDistance  = "標準地 交通施設の状況 距離"
	AppraisalGasSupply        = "標準地 供給処理施設 ガス"
	AppraisalWaterSupply      = "標準地 供給処理施設 水道"
	AppraisalSewerage         = "標準地 供給処理施設 下水道"
)

// AppraisalFieldMappings documents how XCT001 labels map onto models.Appraisal.
var AppraisalFieldMappings = []FieldMapping{
	{AppraisalPrefectureCode, "prefectureCode"},
	{AppraisalMunicipalityCode, "municipalityCode"},
	{AppraisalStandardNumber, "standardNumber"},
	{AppraisalMunicipalityName, "municipalityName"},
	{AppraisalAddressNumber, "addressNumber"},
	{AppraisalAddressDisplay, "addressDisplay"},
	{AppraisalLandUse, "landUse"},
	{AppraisalLandShape, "landShape"},
	{AppraisalFrontage, "frontage"},
	{AppraisalDepth, "depth"},
	{AppraisalArea, "area"},
	{AppraisalYear, "year"},
	{AppraisalPrice, "price"},
	{AppraisalPricePerSquare, "pricePerSquareMeter"},
	{AppraisalAttributes, "attributes"},
	{AppraisalSurroundings, "surroundings"},
	{AppraisalNearestStation, "nearestStation"},
	{AppraisalStationDistance, "stationDistance"},
	{AppraisalGasSupply, "gasSupply"},
	{AppraisalWaterSupply, "waterSupply"},
	{AppraisalSewerage, "sewerage"},
}

const (
	utilityAvailable    = "あり"
	utilityNotAvailable = "なし"
)
