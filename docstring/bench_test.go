package docstring

import "testing"

const benchREST = `Computes the weighted mean of a series.

:param values: The input values.
:type values: List[float]
:param weights: Per-value weights, defaults to None
:type weights: Optional[List[float]]
:return: The weighted mean.
:rtype: float
:raises ValueError: If values is empty.`

const benchGoogle = `Computes the weighted mean of a series.

Args:
    values (List[float]): The input values.
    weights (Optional[List[float]]): Per-value weights, defaults to None

Returns:
    float: The weighted mean.

Raises:
    ValueError: If values is empty.`

const benchNumpy = `Computes the weighted mean of a series.

Parameters
----------
values : List[float]
    The input values.
weights : Optional[List[float]]
    Per-value weights, defaults to None

Returns
-------
float
    The weighted mean.

Raises
------
ValueError
    If values is empty.`

func BenchmarkParseREST(b *testing.B) {
	for b.Loop() {
		if _, err := ParseREST(benchREST); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseGoogle(b *testing.B) {
	for b.Loop() {
		if _, err := ParseGoogle(benchGoogle); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseNumpy(b *testing.B) {
	for b.Loop() {
		if _, err := ParseNumpy(benchNumpy); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseAutoDetect(b *testing.B) {
	for b.Loop() {
		_ = Parse(benchGoogle)
	}
}
