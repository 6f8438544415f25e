package ir

// ToAny exports a tree as plain Go values: sections become
// map[string]any (insertion order lost), arrays []any, scalars their
// natural Go type. Used for JSON interop and expression environments.
func ToAny(y *Node) any {
	switch y.Type {
	case SectionType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i]] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i := range y.Values {
			res[i] = ToAny(y.Values[i])
		}
		return res
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.Number
	default:
		return nil
	}
}
