package core

import "testing"

func TestUtoa(t *testing.T) {
	cases := []struct {
		n    uint32
		want string
	}{
		{0, "0"},
		{7, "7"},
		{41, "41"},
		{400, "400"},
		{65535, "65535"},
		{4294967295, "4294967295"},
	}

	for _, tc := range cases {
		if got := utoa(tc.n); got != tc.want {
			t.Errorf("utoa(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
