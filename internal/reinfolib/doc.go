// Package reinfolib talks to the MLIT real-estate information library API
// (不動産情報ライブラリ) and normalizes its payloads.
//
// Upstream bodies come in three shapes: flat JSON arrays (optionally inside a
// "data" envelope), records keyed by Japanese compound labels, and GeoJSON
// FeatureCollections. Every normalizer reads the body as an untyped gjson
// document and converts it into the typed records in internal/models
// immediately. Normalization never fails: scalars are coerced through
// CoerceFloat and CoerceInt, missing strings become "", and missing
// coordinates become [0,0].
//
// Client pairs each upstream endpoint with its normalizer. Every failed call
// surfaces as a single *APIError carrying the operation name, the HTTP status
// and the best message available.
package reinfolib
