package sphgeom

// DecodeRegion parses the tagged binary encoding produced by any Region's
// Encode method (spec.md §4.3.6/§6) and reconstructs the concrete region it
// represents. Returns a DecodeError if the tag is unrecognized or the
// payload is truncated or malformed.
func DecodeRegion(data []byte) (Region, error) {
	if len(data) == 0 {
		return nil, NewDecodeError("cannot decode a region from an empty byte slice")
	}
	tag, payload := data[0], data[1:]
	switch tag {
	case boxTag:
		return decodeBoxPayload(payload)
	case circleTag:
		return decodeCirclePayload(payload)
	case ellipseTag:
		return decodeEllipsePayload(payload)
	case convexPolygonTag:
		return decodeConvexPolygonPayload(payload)
	case unionRegionTag:
		ops, err := decodeCompoundOperands(payload)
		if err != nil {
			return nil, err
		}
		return NewUnionRegion(ops...), nil
	case intersectionRegionTag:
		ops, err := decodeCompoundOperands(payload)
		if err != nil {
			return nil, err
		}
		return NewIntersectionRegion(ops...), nil
	default:
		return nil, NewDecodeError("unrecognized region tag %d", tag)
	}
}

// decodeCompoundOperands decodes the operand count + length-prefixed
// operand list shared by UnionRegion and IntersectionRegion's encodings.
func decodeCompoundOperands(payload []byte) ([]Region, error) {
	if len(payload) < 4 {
		return nil, NewDecodeError("truncated compound region payload: missing operand count")
	}
	n := int(getU32(payload))
	payload = payload[4:]
	ops := make([]Region, 0, n)
	for i := 0; i < n; i++ {
		if len(payload) < 4 {
			return nil, NewDecodeError("truncated compound region payload: missing operand %d length", i)
		}
		opLen := int(getU32(payload))
		payload = payload[4:]
		if len(payload) < opLen {
			return nil, NewDecodeError("truncated compound region payload: operand %d needs %d bytes, got %d", i, opLen, len(payload))
		}
		op, err := DecodeRegion(payload[:opLen])
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		payload = payload[opLen:]
	}
	if len(ops) < 2 {
		return nil, NewDecodeError("compound region payload has fewer than 2 operands (%d)", len(ops))
	}
	return ops, nil
}
