package money

import "testing"

func TestFormat(t *testing.T) {
	f := NewFormatter()

	cases := []struct {
		amount float64
		want   string
	}{
		{0, "S/ 0.00"},
		{10, "S/ 10.00"},
		{9.5, "S/ 9.50"},
		{49.9, "S/ 49.90"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.amount); got != tc.want {
			t.Fatalf("Format(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
