package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseCents_AcceptsDecimalAmounts(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"100", 100_00},
		{"100.5", 100_50},
		{"100.50", 100_50},
		{"0.05", 5},
		{".99", 99},
		{"-12.34", -12_34},
		{"+3", 3_00},
		{" 42 ", 42_00},
	}

	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func Test_ParseCents_RejectsMalformedAmounts(t *testing.T) {
	for _, in := range []string{"", " ", ".", "12.", "abc", "1.234", "1.2.3", "$5", "1,50"} {
		_, err := ParseCents(in)
		assert.Error(t, err, "input %q", in)
	}
}

func Test_CentsString_RendersDollarsAndCents(t *testing.T) {
	cases := []struct {
		c    Cents
		want string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{50, "$0.50"},
		{12_34, "$12.34"},
		{150_00, "$150.00"},
		{500_00, "$500.00"},
		{-50, "-$0.50"},
		{-12_34, "-$12.34"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.c.String())
	}
}
