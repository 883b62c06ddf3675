package timestring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr error
	}{
		{
			name:  "single unit",
			input: "45s",
			want:  45 * time.Second,
		},
		{
			name:  "compact combination",
			input: "1h30m",
			want:  90 * time.Minute,
		},
		{
			name:  "spaces between tokens",
			input: "2d 4h 10m",
			want:  52*time.Hour + 10*time.Minute,
		},
		{
			name:  "all units",
			input: "1w2d3h4m5s",
			want:  9*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second,
		},
		{
			name:  "multi digit value",
			input: "120m",
			want:  2 * time.Hour,
		},
		{
			name:  "zero value token",
			input: "0s",
			want:  0,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrInvalid,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: ErrInvalid,
		},
		{
			name:    "unknown unit",
			input:   "5x",
			wantErr: ErrInvalid,
		},
		{
			name:    "missing unit letter",
			input:   "90",
			wantErr: ErrInvalid,
		},
		{
			name:    "trailing digits",
			input:   "1h30",
			wantErr: ErrInvalid,
		},
		{
			name:    "out of order units",
			input:   "30m1h",
			wantErr: ErrInvalid,
		},
		{
			name:    "repeated unit",
			input:   "1h2h",
			wantErr: ErrInvalid,
		},
		{
			name:    "unit without value",
			input:   "h",
			wantErr: ErrInvalid,
		},
		{
			name:    "negative value",
			input:   "-5m",
			wantErr: ErrInvalid,
		},
		{
			name:    "total above the sanity bound",
			input:   "300w",
			wantErr: ErrTooLarge,
		},
		{
			name:    "absurdly large value",
			input:   "99999999999999999999s",
			wantErr: ErrTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{
			name:  "zero",
			input: 0,
			want:  "0m 0s",
		},
		{
			name:  "seconds only",
			input: 42 * time.Second,
			want:  "0m 42s",
		},
		{
			name:  "minutes and seconds",
			input: 90 * time.Second,
			want:  "1m 30s",
		},
		{
			name:  "hours appear when nonzero",
			input: 2*time.Hour + 5*time.Second,
			want:  "2h 0m 5s",
		},
		{
			name:  "days and weeks",
			input: 10*24*time.Hour + time.Minute,
			want:  "1w 3d 0h 1m 0s",
		},
		{
			name:  "negative clamps to zero",
			input: -time.Minute,
			want:  "0m 0s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("should return the canonical form", func(t *testing.T) {
		canonical, err := Validate("90m")
		require.NoError(t, err)
		assert.Equal(t, "1h 30m 0s", canonical)
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		_, err := Validate("later")
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestParseFormatRoundTrip(t *testing.T) {
	inputs := []string{"45s", "1h 30m", "1w2d3h4m5s", "6h"}

	for _, input := range inputs {
		parsed, err := Parse(input)
		require.NoError(t, err)

		again, err := Parse(Format(parsed))
		require.NoError(t, err)
		assert.Equal(t, parsed, again, "round trip changed the value for %q", input)
	}
}
