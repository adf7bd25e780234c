package types

// Rating is the colour band of a gross or net risk score shown in the risk table.
type Rating string

const (
	RatingNone     Rating = ""
	RatingVeryLow  Rating = "very_low"
	RatingLow      Rating = "low"
	RatingMedium   Rating = "medium"
	RatingHigh     Rating = "high"
	RatingVeryHigh Rating = "very_high"
)

// AllRatings returns the bands from highest to lowest, matching the legend order.
func AllRatings() []Rating {
	return []Rating{
		RatingVeryHigh,
		RatingHigh,
		RatingMedium,
		RatingLow,
		RatingVeryLow,
	}
}

// RatingOf returns the band for score. A nil or non-positive score has no band.
func RatingOf(score *float64) Rating {
	if score == nil {
		return RatingNone
	}
	switch s := *score; {
	case s > 16:
		return RatingVeryHigh
	case s > 10:
		return RatingHigh
	case s > 6:
		return RatingMedium
	case s > 3:
		return RatingLow
	case s > 0:
		return RatingVeryLow
	default:
		return RatingNone
	}
}

// Label returns the legend text of the band
func (r Rating) Label() string {
	switch r {
	case RatingVeryHigh:
		return "Very High"
	case RatingHigh:
		return "High"
	case RatingMedium:
		return "Medium"
	case RatingLow:
		return "Low"
	case RatingVeryLow:
		return "Very Low"
	default:
		return ""
	}
}

// Color returns the hex colour of the band
func (r Rating) Color() string {
	switch r {
	case RatingVeryHigh:
		return "#FF0000"
	case RatingHigh:
		return "#FFA500"
	case RatingMedium:
		return "#FFFF00"
	case RatingLow:
		return "#9ACD32"
	case RatingVeryLow:
		return "#7FFF00"
	default:
		return "#FFFFFF"
	}
}
