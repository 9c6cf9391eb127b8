package poly

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// WriteLayer saves a feature collection as GeoJSON.
func WriteLayer(fp string, fc *geojson.FeatureCollection) error {
	b, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf(" poly.WriteLayer %v", err)
	}
	if err := os.WriteFile(fp, b, 0644); err != nil {
		return fmt.Errorf(" poly.WriteLayer %v", err)
	}
	return nil
}

// ReadLayer loads a GeoJSON feature collection.
func ReadLayer(fp string) (*geojson.FeatureCollection, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf(" poly.ReadLayer %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf(" poly.ReadLayer %v", err)
	}
	return fc, nil
}

// Code reads an integer feature property, tolerant of the float64
// values JSON decoding produces.
func Code(f *geojson.Feature, key string) int {
	switch v := f.Properties[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}
