// Package catalogue holds the validator identifiers known to the strict type
// validator test suite.
package catalogue

// Namespaces the identifiers are qualified with.
const (
	strict   = "rpn::StrictTypeValidator::"
	timecode = "timecode_validator::"
	frac     = "frac_validator::"
)

var validators = [...]string{
	strict + "d1_double",
	strict + "d1_integer",
	strict + "d1_boolean",
	strict + "d1_object",
	strict + "d1_string",
	strict + "d1_array",
	strict + "d1_vec3",
	strict + "d2_vec3_vec3",
	strict + "d2_double_double",
	strict + "d2_double_integer",
	strict + "d2_integer_double",
	strict + "d2_integer_integer",
	strict + "d2_boolean_boolean",
	strict + "d2_vec3_double",
	strict + "d2_double_vec3",
	strict + "d2_vec3_integer",
	strict + "d2_integer_vec3",
	strict + "d2_array_any",
	strict + "d2_any_array",
	strict + "d2_string_any",
	strict + "d2_any_string",
	strict + "d2_object_any",
	strict + "d2_any_object",
	strict + "d3_double_double_double",
	strict + "d3_integer_double_double",
	strict + "d3_double_integer_double",
	strict + "d3_double_double_integer",
	strict + "d3_integer_integer_integer",
	strict + "d3_double_integer_integer",
	strict + "d3_integer_double_integer",
	strict + "d3_integer_integer_double",
	strict + "d3_any_any_boolean",
	strict + "d3_object_string_any",
	strict + "d3_string_any_object",
	strict + "d4_double_double_double_integer",
	strict + "d4_integer_double_double_double",

	timecode + "d1_tc",
	timecode + "d2_tc_tc",
	timecode + "d2_int_tc",
	timecode + "d2_tc_int",

	frac + "d1_frac",
	frac + "d2_frac_frac",
	frac + "d2_frac_int",
	frac + "d2_frac_double",
	frac + "d2_int_frac",
	frac + "d2_double_frac",
	frac + "d5_int_int_int_int_frac",
}

// Default returns the catalogue in its canonical order.
//
// Each call returns a new slice.
func Default() []string {
	out := make([]string, len(validators))
	copy(out, validators[:])

	return out
}
