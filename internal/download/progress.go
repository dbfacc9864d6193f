package download

import (
	"math"
	"strconv"
	"strings"
)

// StatusDownloading is the only engine status that carries a usable percentage
const StatusDownloading = "downloading"

// ParsePercent normalizes engine percentage text ("42%", " 7.5%") to a
// number in [0, 100]. Missing or malformed text yields 0.
func ParsePercent(text string) float64 {
	s := strings.TrimSpace(text)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}

	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
