package validator

import (
	"math"
	"strconv"
	"strings"
)

func Latitude(lat string) bool {
	return coordinate(lat, 90)
}

func Longitude(lon string) bool {
	return coordinate(lon, 180)
}

func coordinate(value string, limit float64) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Abs(f) <= limit
}
