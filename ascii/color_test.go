package ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#ff8000", want: RGB(255, 128, 0)},
		{in: "#FF800080", want: RGB(255, 128, 0)},
		{in: "202", want: ANSI(202)},
		{in: "0", want: ANSI(0)},
		{in: "dark_red", want: NamedColor(DarkRed)},
		{in: "DarkRed", want: NamedColor(DarkRed)},
		{in: "dark-grey", want: NamedColor(DarkGrey)},
		{in: "Cyan", want: NamedColor(Cyan)},
		{in: "RED", want: NamedColor(Red)},
		{in: "DARK_RED", want: NamedColor(DarkRed)},
		{in: "Dark Magenta", want: NamedColor(DarkMagenta)},
		{in: "fg", want: NamedColor(Reset)},
		{in: "reset", want: NamedColor(Reset)},
		{in: "#ff80", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "256", wantErr: true},
		{in: "chartreuse", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestColorString_ParsesBack(t *testing.T) {
	for _, c := range []Color{RGB(1, 2, 3), ANSI(17), NamedColor(DarkMagenta), NamedColor(Reset)} {
		back, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

func TestColorYAML(t *testing.T) {
	var got struct {
		Colors []Color `yaml:"colors"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`colors: ["#000000", white, 9]`), &got))
	assert.Equal(t, []Color{RGB(0, 0, 0), NamedColor(White), ANSI(9)}, got.Colors)

	out, err := yaml.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(out), "#000000")

	assert.Error(t, yaml.Unmarshal([]byte(`colors: [[1, 2]]`), &got))
}

func TestNamedColor_OutOfRange(t *testing.T) {
	assert.Equal(t, NamedColor(Reset), NamedColor(namedCount+3))
}
