package mdp

import (
	"fmt"
	"strconv"
	"strings"
)

// InferValue converts the text of a parameter value to its typed form. If every
// whitespace-separated token parses as a base-10 integer the result is an int,
// or a []int for more than one token. Failing that, if every token parses as a
// float the result is a float64 or []float64. Otherwise the value stays the
// original string: multi-token free text is deliberately kept as one string,
// never split into a list, because downstream logic distinguishes scalar-string
// from vector-numeric parameters. An empty value yields "".
func InferValue(s string) any {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return ""
	}
	ints := make([]int, 0, len(tokens))
	for _, t := range tokens {
		n, err := strconv.Atoi(t)
		if err != nil {
			ints = nil
			break
		}
		ints = append(ints, n)
	}
	if ints != nil {
		if len(ints) == 1 {
			return ints[0]
		}
		return ints
	}
	floats := make([]float64, 0, len(tokens))
	for _, t := range tokens {
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			floats = nil
			break
		}
		floats = append(floats, f)
	}
	if floats != nil {
		if len(floats) == 1 {
			return floats[0]
		}
		return floats
	}
	return s
}

// FormatValue renders a parameter value back to mdp text. Lists render as their
// elements joined by single spaces. Floats always keep a decimal point or
// exponent so that re-parsing the output infers a float again, not an int.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return formatFloat(v)
	case []int:
		r := make([]string, len(v))
		for i, n := range v {
			r[i] = strconv.Itoa(n)
		}
		return strings.Join(r, " ")
	case []float64:
		r := make([]string, len(v))
		for i, f := range v {
			r[i] = formatFloat(f)
		}
		return strings.Join(r, " ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
