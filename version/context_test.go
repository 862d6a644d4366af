package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromGameVersion(t *testing.T) {
	cases := []struct {
		name    string
		version string
		wantV10 bool
	}{
		{"exact threshold", "0.10.30.22239", true},
		{"above threshold patch", "0.10.30.22240", true},
		{"above threshold minor", "0.10.31.0", true},
		{"above threshold major", "1.0.0.0", true},
		{"below threshold", "0.10.30.22238", false},
		{"well below", "0.9.27.0", false},
		{"legacy short form", "0.9", false},
		{"missing parts default to zero", "0.10.30", false},
		{"empty string", "", false},
		{"non numeric parts default to zero", "a.b.c.d", false},
		{"extra parts ignored", "0.10.30.22239.99", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := FromGameVersion(tc.version)
			require.Equal(t, tc.wantV10, ctx.IsV10)
		})
	}
}

func TestParseQuad(t *testing.T) {
	require.Equal(t, quad{0, 10, 30, 22239}, parseQuad("0.10.30.22239"))
	require.Equal(t, quad{1, 0, 0, 0}, parseQuad("1"))
	require.Equal(t, quad{0, 0, 0, 0}, parseQuad(""))
}
