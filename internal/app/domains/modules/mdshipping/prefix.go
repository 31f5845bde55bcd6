package mdshipping

import "strconv"

// UnknownPlace city/state reported for destinations missing from the table
const UnknownPlace = "Unknown"

type latLon struct {
	lat, lon float64
}

// national ZIP areas by first digit, approximate population centroids
var zipAreaCentroids = [10]latLon{
	0: {42.0, -72.0},  // New England, NJ, PR
	1: {41.5, -76.0},  // NY, PA, DE
	2: {37.0, -79.0},  // DC, MD, VA, WV, NC, SC
	3: {32.5, -85.0},  // FL, GA, AL, TN, MS
	4: {40.5, -84.5},  // IN, KY, MI, OH
	5: {45.0, -95.0},  // IA, MN, MT, ND, SD, WI
	6: {40.0, -93.5},  // IL, KS, MO, NE
	7: {32.0, -95.5},  // AR, LA, OK, TX
	8: {39.0, -110.0}, // AZ, CO, ID, NM, NV, UT, WY
	9: {39.0, -121.0}, // CA, OR, WA, AK, HI
}

// remote three digit prefixes: PR/VI, HI, Pacific territories, AK
var remotePrefixRanges = [][2]int{
	{6, 9},
	{967, 969},
	{995, 999},
}

func prefixCentroid(code string) (latLon, bool) {
	if !isZip5(code) {
		return latLon{}, false
	}
	return zipAreaCentroids[code[0]-'0'], true
}

// IsRemotePrefix reports whether the ZIP belongs to a non-contiguous region
func IsRemotePrefix(code string) bool {
	if len(code) < 3 {
		return false
	}
	prefix, err := strconv.Atoi(code[:3])
	if err != nil {
		return false
	}
	for _, r := range remotePrefixRanges {
		if prefix >= r[0] && prefix <= r[1] {
			return true
		}
	}
	return false
}

func isZip5(code string) bool {
	if len(code) != 5 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
