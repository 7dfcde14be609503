package geo

import (
	"context"
	"errors"
	"fmt"

	"github.com/maeumlab/gunghap/internal/domain/model"
)

// ErrUnknownDistrict marks a city/district pair with no known
// coordinate. Callers fall back to the distance sentinel.
var ErrUnknownDistrict = errors.New("unknown district")

// Geocoder resolves a city/district pair into a coordinate. The
// default implementation is table-backed; production deployments may
// swap in an external map API client.
type Geocoder interface {
	Resolve(ctx context.Context, city, district string) (model.Coordinate, error)
}

// districtCoordinates holds representative coordinates for major
// Korean districts, keyed "시 구". Seoul/Gyeonggi plus the major
// metropolitan areas; enough for the MVP matching radius.
var districtCoordinates = map[string]model.Coordinate{
	// 서울
	"서울시 강남구":  {Lat: 37.5172, Lon: 127.0473},
	"서울시 서초구":  {Lat: 37.4837, Lon: 127.0324},
	"서울시 송파구":  {Lat: 37.5145, Lon: 127.1066},
	"서울시 마포구":  {Lat: 37.5665, Lon: 126.9018},
	"서울시 용산구":  {Lat: 37.5326, Lon: 126.9900},
	"서울시 종로구":  {Lat: 37.5726, Lon: 126.9796},
	"서울시 중구":   {Lat: 37.5636, Lon: 126.9975},
	"서울시 영등포구": {Lat: 37.5264, Lon: 126.8962},
	"서울시 강서구":  {Lat: 37.5510, Lon: 126.8495},
	"서울시 관악구":  {Lat: 37.4784, Lon: 126.9516},

	// 경기
	"경기도 성남시": {Lat: 37.4200, Lon: 127.1265},
	"경기도 수원시": {Lat: 37.2636, Lon: 127.0286},
	"경기도 용인시": {Lat: 37.2410, Lon: 127.1775},
	"경기도 고양시": {Lat: 37.6584, Lon: 126.8320},
	"경기도 부천시": {Lat: 37.5034, Lon: 126.7660},
	"경기도 안양시": {Lat: 37.3943, Lon: 126.9568},
	"경기도 파주시": {Lat: 37.7600, Lon: 126.7800},

	// 광역시/지방
	"부산시 해운대구": {Lat: 35.1631, Lon: 129.1636},
	"부산시 부산진구": {Lat: 35.1630, Lon: 129.0530},
	"인천시 연수구":  {Lat: 37.4100, Lon: 126.6780},
	"대구시 수성구":  {Lat: 35.8580, Lon: 128.6300},
	"대전시 유성구":  {Lat: 36.3620, Lon: 127.3560},
	"강원도 강릉시":  {Lat: 37.7519, Lon: 128.8760},
	"제주시":      {Lat: 33.4996, Lon: 126.5312},
}

// StaticGeocoder resolves districts from the built-in table.
type StaticGeocoder struct{}

// NewStaticGeocoder creates the table-backed geocoder.
func NewStaticGeocoder() *StaticGeocoder {
	return &StaticGeocoder{}
}

// Resolve looks up the "city district" key. Single-token keys such as
// 제주시 are matched on city alone when district is empty.
func (g *StaticGeocoder) Resolve(_ context.Context, city, district string) (model.Coordinate, error) {
	if city == "" {
		return model.Coordinate{}, fmt.Errorf("%w: empty city", ErrUnknownDistrict)
	}
	key := city
	if district != "" {
		key = city + " " + district
	}
	coord, ok := districtCoordinates[key]
	if !ok {
		return model.Coordinate{}, fmt.Errorf("%w: %s", ErrUnknownDistrict, key)
	}
	return coord, nil
}
