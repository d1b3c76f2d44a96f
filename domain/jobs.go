package domain

import (
	"fmt"
	"strings"
)

// Region is a BigQuery multi-region scope over which job history and
// catalog views are partitioned.
type Region string

const (
	RegionUS Region = "US"
	RegionEU Region = "EU"
)

func (r Region) String() string {
	return string(r)
}

// ParseRegion validates a user-supplied location value against the closed
// set of supported multi-regions before any network call is made.
func ParseRegion(s string) (Region, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "US":
		return RegionUS, nil
	case "EU":
		return RegionEU, nil
	default:
		return "", fmt.Errorf("%w %q. Use US or EU", ErrUnsupportedRegion, s)
	}
}

// ParseRegions parses a comma-separated locations value, preserving order.
func ParseRegions(csv string) ([]Region, error) {
	var regions []Region

	for _, item := range strings.Split(csv, ",") {
		if strings.TrimSpace(item) == "" {
			continue
		}

		region, err := ParseRegion(item)
		if err != nil {
			return nil, err
		}

		regions = append(regions, region)
	}

	if len(regions) == 0 {
		return nil, fmt.Errorf("%w %q. Use US or EU", ErrUnsupportedRegion, csv)
	}

	return regions, nil
}

// JobRecord is one completed query execution from a region's job history.
// Values are normalized at the collector boundary: absent numerics are 0,
// absent text is the empty string.
type JobRecord struct {
	Location            string
	JobID               string
	UserEmail           string
	CreationTime        string
	EndTime             string
	TotalBytesProcessed int64
	TotalBytesBilled    int64
	TotalSlotMS         int64
	StatementType       string
	Query               string
}
