package main

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPort is returned when an origin or destination name is not
// in the port registry.
var ErrUnknownPort = errors.New("unknown port")

// Port is an entry in the fixed registry of major container ports.
// Data source: World Shipping Council 2023.
type Port struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Country     string  `json:"country"`
	Region      string  `json:"region"`
	TEUMillions float64 `json:"teu_millions"`
}

// Coord returns the port's coordinate.
func (p Port) Coord() Point {
	return Point{Lon: p.Lon, Lat: p.Lat}
}

var majorPorts = map[string]Port{
	// Asia-Pacific
	"Shanghai":        {Name: "Shanghai", Lat: 31.2304, Lon: 121.4737, Country: "China", Region: "East Asia", TEUMillions: 47.3},
	"Singapore":       {Name: "Singapore", Lat: 1.3521, Lon: 103.8198, Country: "Singapore", Region: "Southeast Asia", TEUMillions: 37.2},
	"Ningbo-Zhoushan": {Name: "Ningbo-Zhoushan", Lat: 29.8683, Lon: 121.5440, Country: "China", Region: "East Asia", TEUMillions: 33.4},
	"Shenzhen":        {Name: "Shenzhen", Lat: 22.5431, Lon: 114.0579, Country: "China", Region: "East Asia", TEUMillions: 30.0},
	"Guangzhou":       {Name: "Guangzhou", Lat: 23.1291, Lon: 113.2644, Country: "China", Region: "South China", TEUMillions: 24.2},
	"Busan":           {Name: "Busan", Lat: 35.1796, Lon: 129.0756, Country: "South Korea", Region: "East Asia", TEUMillions: 22.0},
	"Hong Kong":       {Name: "Hong Kong", Lat: 22.3193, Lon: 114.1694, Country: "Hong Kong", Region: "South China", TEUMillions: 17.8},
	"Qingdao":         {Name: "Qingdao", Lat: 36.0671, Lon: 120.3826, Country: "China", Region: "East Asia", TEUMillions: 15.3},
	"Tianjin":         {Name: "Tianjin", Lat: 39.1422, Lon: 117.1767, Country: "China", Region: "North China", TEUMillions: 14.5},
	"Tokyo":           {Name: "Tokyo", Lat: 35.6532, Lon: 139.8395, Country: "Japan", Region: "East Asia", TEUMillions: 5.2},

	// Middle East & South Asia
	"Dubai":      {Name: "Dubai", Lat: 25.2769, Lon: 55.2962, Country: "UAE", Region: "Middle East", TEUMillions: 14.1},
	"Port Klang": {Name: "Port Klang", Lat: 3.0048, Lon: 101.3950, Country: "Malaysia", Region: "Southeast Asia", TEUMillions: 13.6},
	"Colombo":    {Name: "Colombo", Lat: 6.9271, Lon: 79.8612, Country: "Sri Lanka", Region: "South Asia", TEUMillions: 7.2},

	// Europe
	"Rotterdam":  {Name: "Rotterdam", Lat: 51.9244, Lon: 4.4777, Country: "Netherlands", Region: "Northern Europe", TEUMillions: 14.5},
	"Antwerp":    {Name: "Antwerp", Lat: 51.2194, Lon: 4.4025, Country: "Belgium", Region: "Northern Europe", TEUMillions: 12.0},
	"Hamburg":    {Name: "Hamburg", Lat: 53.5511, Lon: 9.9937, Country: "Germany", Region: "Northern Europe", TEUMillions: 8.7},
	"Felixstowe": {Name: "Felixstowe", Lat: 51.9542, Lon: 1.3515, Country: "United Kingdom", Region: "Northern Europe", TEUMillions: 3.8},
	"Valencia":   {Name: "Valencia", Lat: 39.4699, Lon: -0.3763, Country: "Spain", Region: "Southern Europe", TEUMillions: 5.6},
	"Piraeus":    {Name: "Piraeus", Lat: 37.9495, Lon: 23.6347, Country: "Greece", Region: "Southern Europe", TEUMillions: 5.4},

	// Americas
	"Los Angeles": {Name: "Los Angeles", Lat: 33.7405, Lon: -118.2713, Country: "USA", Region: "West Coast USA", TEUMillions: 10.7},
	"Long Beach":  {Name: "Long Beach", Lat: 33.7701, Lon: -118.1937, Country: "USA", Region: "West Coast USA", TEUMillions: 9.4},
	"New York":    {Name: "New York", Lat: 40.6692, Lon: -74.0445, Country: "USA", Region: "East Coast USA", TEUMillions: 7.8},
	"Savannah":    {Name: "Savannah", Lat: 32.0835, Lon: -81.0998, Country: "USA", Region: "East Coast USA", TEUMillions: 5.9},
	"Santos":      {Name: "Santos", Lat: -23.9608, Lon: -46.3334, Country: "Brazil", Region: "South America", TEUMillions: 4.4},
	"Vancouver":   {Name: "Vancouver", Lat: 49.2827, Lon: -123.1207, Country: "Canada", Region: "West Coast Canada", TEUMillions: 3.6},

	// Africa
	"Tangier":   {Name: "Tangier", Lat: 35.7595, Lon: -5.8340, Country: "Morocco", Region: "North Africa", TEUMillions: 8.6},
	"Port Said": {Name: "Port Said", Lat: 31.2653, Lon: 32.3019, Country: "Egypt", Region: "North Africa", TEUMillions: 6.1},
	"Durban":    {Name: "Durban", Lat: -29.8587, Lon: 31.0218, Country: "South Africa", Region: "Southern Africa", TEUMillions: 2.8},

	// Oceania
	"Melbourne": {Name: "Melbourne", Lat: -37.8136, Lon: 144.9631, Country: "Australia", Region: "Oceania", TEUMillions: 3.0},
	"Sydney":    {Name: "Sydney", Lat: -33.8688, Lon: 151.2093, Country: "Australia", Region: "Oceania", TEUMillions: 2.6},
}

// LookupPort returns the coordinate of a registered port, or
// ErrUnknownPort when the name is absent from the registry.
func LookupPort(name string) (Point, error) {
	port, ok := majorPorts[name]
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrUnknownPort, name)
	}
	return port.Coord(), nil
}

// AllPorts returns every registered port sorted by name.
func AllPorts() []Port {
	ports := make([]Port, 0, len(majorPorts))
	for _, p := range majorPorts {
		ports = append(ports, p)
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].Name < ports[j].Name })
	return ports
}
