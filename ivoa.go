package sphgeom

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePos parses an IVOA DALI/SODA "POS" string (spec.md §4.6) of the form
//
//	CIRCLE <lon> <lat> <radius>
//	RANGE <lon1> <lon2> <lat1> <lat2>
//	POLYGON <lon1> <lat1> <lon2> <lat2> ...
//
// with all numeric values in degrees, and returns the corresponding Region.
// The shape keyword is case-sensitive; there is no coordinate frame token.
func ParsePos(s string) (Region, error) {
	fields := strings.Fields(s)
	if len(fields) < 1 {
		return nil, NewInvalidArgumentError("POS string %q is empty", s)
	}
	shape := fields[0]
	nums, err := parseFloats(fields[1:])
	if err != nil {
		return nil, NewInvalidArgumentError("POS string %q: %v", s, err)
	}
	switch shape {
	case "CIRCLE":
		if len(nums) != 3 || hasInf(nums) {
			return nil, NewInvalidArgumentError("POS CIRCLE needs 3 finite numbers (lon, lat, radius), got %v", nums)
		}
		center := UnitVector3dFromLonLat(LonLat{
			Lon: NormalizedAngleFromDegrees(nums[0]),
			Lat: clampLat(AngleFromDegrees(nums[1])),
		})
		return NewCircleFromAngle(center, AngleFromDegrees(nums[2])), nil
	case "POLYGON":
		if len(nums) < 6 || len(nums)%2 != 0 || hasInf(nums) {
			return nil, NewInvalidArgumentError("POS POLYGON needs an even number of finite numbers >= 6, got %d", len(nums))
		}
		verts := make([]UnitVector3d, len(nums)/2)
		for i := range verts {
			verts[i] = UnitVector3dFromLonLat(LonLat{
				Lon: NormalizedAngleFromDegrees(nums[2*i]),
				Lat: clampLat(AngleFromDegrees(nums[2*i+1])),
			})
		}
		return NewConvexPolygon(verts), nil
	case "RANGE":
		if len(nums) != 4 {
			return nil, NewInvalidArgumentError("POS RANGE needs 4 numbers (lon1, lon2, lat1, lat2), got %d", len(nums))
		}
		lon := NewNormalizedAngleInterval(
			NormalizedAngleFromDegrees(clampRangeLonDegrees(nums[0])),
			NormalizedAngleFromDegrees(clampRangeLonDegrees(nums[1])),
		)
		if math.IsInf(nums[0], -1) && math.IsInf(nums[1], 1) {
			lon = FullNormalizedAngleInterval()
		}
		lat := NewAngleInterval(
			AngleFromDegrees(clampRangeLatDegrees(nums[2])),
			AngleFromDegrees(clampRangeLatDegrees(nums[3])),
		)
		return NewBox(lon, lat), nil
	default:
		return nil, NewInvalidArgumentError("POS string %q has unrecognized shape %q", s, shape)
	}
}

func hasInf(nums []float64) bool {
	for _, v := range nums {
		if math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// clampRangeLonDegrees maps +-Inf (only meaningful for RANGE, per spec.md
// §4.6) to the longitude domain's own bounds; every other value passes
// through unchanged.
func clampRangeLonDegrees(v float64) float64 {
	switch {
	case math.IsInf(v, -1):
		return 0
	case math.IsInf(v, 1):
		return 360
	default:
		return v
	}
}

// clampRangeLatDegrees maps +-Inf to the latitude domain's own bounds.
func clampRangeLatDegrees(v float64) float64 {
	switch {
	case math.IsInf(v, -1):
		return -90
	case math.IsInf(v, 1):
		return 90
	default:
		return v
	}
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		if strings.EqualFold(f, "-Inf") {
			out[i] = math.Inf(-1)
			continue
		}
		if strings.EqualFold(f, "+Inf") || strings.EqualFold(f, "Inf") {
			out[i] = math.Inf(1)
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// WritePos renders r as an IVOA POS string. Only Circle, Box and
// ConvexPolygon have a direct textual form; other kinds return a
// NotImplementedError, matching spec.md's scope for the IVOA format (it
// documents only the three basic shapes, not the compound regions).
func WritePos(r Region) (string, error) {
	switch v := r.(type) {
	case Circle:
		if v.IsEmpty() {
			return "", NewNotImplementedError("POS has no textual form for an empty CIRCLE")
		}
		p := v.Center().LonLat()
		return fmt.Sprintf("CIRCLE %s %s %s",
			formatFloat(p.Lon.Degrees()), formatFloat(p.Lat.Degrees()), formatFloat(v.OpeningAngle().Degrees())), nil
	case Box:
		if v.IsEmpty() {
			return "", NewNotImplementedError("POS has no textual form for an empty RANGE")
		}
		lon1, lon2 := float64(v.Lon.A()), float64(v.Lon.B())
		if v.Lon.IsFull() {
			lon1, lon2 = math.Inf(-1), math.Inf(1)
		}
		return fmt.Sprintf("RANGE %s %s %s %s",
			formatDegrees(lon1), formatDegrees(lon2),
			formatFloat(v.Lat.A().Degrees()), formatFloat(v.Lat.B().Degrees())), nil
	case ConvexPolygon:
		var b strings.Builder
		b.WriteString("POLYGON")
		for _, vert := range v.Vertices {
			p := vert.LonLat()
			fmt.Fprintf(&b, " %s %s", formatFloat(p.Lon.Degrees()), formatFloat(p.Lat.Degrees()))
		}
		return b.String(), nil
	default:
		return "", NewNotImplementedError("POS has no textual form for region type %T", r)
	}
}

func formatDegrees(radOrInf float64) string {
	if math.IsInf(radOrInf, -1) {
		return "-Inf"
	}
	if math.IsInf(radOrInf, 1) {
		return "+Inf"
	}
	return formatFloat(radOrInf * 180 / math.Pi)
}

// EncodeBase64 returns r's tagged binary encoding, base64-encoded -- the
// transport form used when a Region travels inside a URL query parameter or
// a text-based protocol message (spec.md §4.3.6).
func EncodeBase64(r Region) string {
	return base64.StdEncoding.EncodeToString(r.Encode())
}

func decodeOneBase64(s string) (Region, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, NewDecodeError("invalid base64 region encoding: %v", err)
	}
	return DecodeRegion(raw)
}

// decodeBase64 decodes s into a Region: an empty string decodes to an
// empty union (the empty Box, the package's canonical empty Region value);
// a string containing ':' separators decodes each part and unions them;
// otherwise s is a single base64-encoded region (spec.md §4.3.6).
func decodeBase64(s string) (Region, error) {
	if s == "" {
		return EmptyBox(), nil
	}
	if !strings.Contains(s, ":") {
		return decodeOneBase64(s)
	}
	parts := strings.Split(s, ":")
	regions := make([]Region, 0, len(parts))
	for _, p := range parts {
		r, err := decodeOneBase64(p)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	if len(regions) == 1 {
		return regions[0], nil
	}
	return NewUnionRegion(regions...), nil
}

// decodeOverlapsBase64 evaluates s as a boolean expression over region
// pairs: terms of the form "A&B" (each of A, B a base64-encoded region per
// decodeBase64) joined by '|', where each term evaluates to A.Overlaps(B)
// and the whole expression is the tri-state OR of its terms (spec.md
// §4.3.6): OverlapTrue as soon as one term is true, else OverlapUnknown if
// any term is unknown, else OverlapFalse.
func decodeOverlapsBase64(s string) (Overlap, error) {
	if s == "" {
		return OverlapFalse, NewDecodeError("overlaps expression is empty")
	}
	terms := strings.Split(s, "|")
	sawUnknown := false
	for _, term := range terms {
		parts := strings.SplitN(term, "&", 2)
		if len(parts) != 2 {
			return OverlapFalse, NewDecodeError("overlaps term %q is not of the form A&B", term)
		}
		a, err := decodeBase64(parts[0])
		if err != nil {
			return OverlapFalse, err
		}
		b, err := decodeBase64(parts[1])
		if err != nil {
			return OverlapFalse, err
		}
		switch a.Overlaps(b) {
		case OverlapTrue:
			return OverlapTrue, nil
		case OverlapUnknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return OverlapUnknown, nil
	}
	return OverlapFalse, nil
}
