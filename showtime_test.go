package showtimes_test

import (
	"testing"

	"github.com/fwojciec/showtimes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeShowtimes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"midnight", []string{"12:00am"}, []string{"00:00"}},
		{"noon", []string{"12:00pm"}, []string{"12:00"}},
		{"early afternoon", []string{"1:05pm"}, []string{"13:05"}},
		{"late morning", []string{"11:59am"}, []string{"11:59"}},
		{"pads single digit hour", []string{"9:30am"}, []string{"09:30"}},
		{"upper case suffix", []string{"7:10PM"}, []string{"19:10"}},
		{
			"suffix applies to following bare tokens",
			[]string{"10:35am", "12:25pm", "1:15", "3:40"},
			[]string{"10:35", "12:25", "13:15", "15:40"},
		},
		{
			"new suffix overrides carried one",
			[]string{"11:00pm", "11:45", "12:10am", "12:50"},
			[]string{"23:00", "23:45", "00:10", "00:50"},
		},
		{"bare token before first suffix is 24-hour", []string{"12:30", "2:00pm"}, []string{"12:30", "14:00"}},
		{"empty list", []string{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := showtimes.NormalizeShowtimes(tt.tokens)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeShowtimes_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := showtimes.NormalizeShowtimes([]string{"12:00am", "9:15am", "1:05pm", "11:59pm"})
	require.NoError(t, err)

	second, err := showtimes.NormalizeShowtimes(first)
	require.NoError(t, err)

	assert.Equal(t, []string{"00:00", "09:15", "13:05", "23:59"}, first)
	assert.Equal(t, first, second)
}

func TestNormalizeShowtimes_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{"no leading digits", "pm"},
		{"text token", "soldout"},
		{"missing colon", "1030am"},
		{"one digit minute", "10:5am"},
		{"minute out of range", "10:75am"},
		{"hour out of range for 12-hour", "13:00pm"},
		{"zero hour for 12-hour", "0:30pm"},
		{"hour out of range for 24-hour", "24:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := showtimes.NormalizeShowtimes([]string{"10:00am", tt.token})

			require.Error(t, err)
			assert.Equal(t, showtimes.EMALFORMEDTIME, showtimes.ErrorCode(err))
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	t.Parallel()

	t.Run("returns suffix in effect", func(t *testing.T) {
		t.Parallel()

		got, next, err := showtimes.NormalizeTime("4:20pm", "am")

		require.NoError(t, err)
		assert.Equal(t, "16:20", got)
		assert.Equal(t, "pm", next)
	})

	t.Run("bare token inherits active suffix", func(t *testing.T) {
		t.Parallel()

		got, next, err := showtimes.NormalizeTime("12:30", "am")

		require.NoError(t, err)
		assert.Equal(t, "00:30", got)
		assert.Equal(t, "am", next)
	})
}

func TestCarrySuffix(t *testing.T) {
	t.Parallel()

	t.Run("suffix persists until overridden", func(t *testing.T) {
		t.Parallel()

		got, err := showtimes.CarrySuffix([]string{"10:00am", "10:30", "11:15pm", "11:45"})

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00am", "10:30am", "11:15pm", "11:45pm"}, got)
	})

	t.Run("tokens before first suffix are unchanged", func(t *testing.T) {
		t.Parallel()

		got, err := showtimes.CarrySuffix([]string{"9:00", "9:30pm", "10:00"})

		require.NoError(t, err)
		assert.Equal(t, []string{"9:00", "9:30pm", "10:00pm"}, got)
	})

	t.Run("carries suffix in its written case", func(t *testing.T) {
		t.Parallel()

		got, err := showtimes.CarrySuffix([]string{"10:00PM", "10:30", "11:00am", "11:30"})

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00PM", "10:30PM", "11:00am", "11:30am"}, got)
	})

	t.Run("rejects token without leading digits", func(t *testing.T) {
		t.Parallel()

		_, err := showtimes.CarrySuffix([]string{"10:00am", "tba"})

		assert.Equal(t, showtimes.EMALFORMEDTIME, showtimes.ErrorCode(err))
	})
}

func TestSplitShowtimes(t *testing.T) {
	t.Parallel()

	t.Run("strips whitespace and splits on pipe", func(t *testing.T) {
		t.Parallel()

		got := showtimes.SplitShowtimes("\n  10:35am |\n  12:25pm | 2:40 \n")

		assert.Equal(t, []string{"10:35am", "12:25pm", "2:40"}, got)
	})

	t.Run("empty blob yields no tokens", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, showtimes.SplitShowtimes("  \n "))
	})
}

func TestParseShowtimes(t *testing.T) {
	t.Parallel()

	t.Run("defaults to 24-hour mode", func(t *testing.T) {
		t.Parallel()

		got, err := showtimes.ParseShowtimes("10:00am | 10:30 | 11:15pm | 11:45", "")

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "10:30", "23:15", "23:45"}, got)
	})

	t.Run("suffix-carry mode", func(t *testing.T) {
		t.Parallel()

		got, err := showtimes.ParseShowtimes("10:00am | 10:30 | 11:15pm | 11:45", showtimes.ModeSuffixCarry)

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00am", "10:30am", "11:15pm", "11:45pm"}, got)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()

		_, err := showtimes.ParseShowtimes("10:00am", "12h")

		assert.Equal(t, showtimes.EINVALID, showtimes.ErrorCode(err))
	})
}
