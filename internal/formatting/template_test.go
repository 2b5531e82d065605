package formatting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func completeFields() AdFields {
	return AdFields{
		Role:        "Пассажир",
		Source:      "Baku",
		Destination: "Istanbul",
		FlightDate:  "2025-07-10",
		Description: "2 bags, flexible dates",
		Author:      "ivan",
	}
}

func TestRenderFillsAllPlaceholders(t *testing.T) {
	tpl := "✈️ {role}: {source} → {destination}\n📅 {flight_date}\n{description}\n👤 {user_id}"

	out, err := Render(tpl, completeFields())
	require.NoError(t, err)
	require.Equal(t, "✈️ Пассажир: Baku → Istanbul\n📅 2025-07-10\n2 bags, flexible dates\n👤 ivan", out)
}

func TestRenderFailsOnMissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AdFields)
	}{
		{"role", func(f *AdFields) { f.Role = "" }},
		{"source", func(f *AdFields) { f.Source = "" }},
		{"destination", func(f *AdFields) { f.Destination = "" }},
		{"flight_date", func(f *AdFields) { f.FlightDate = "" }},
		{"description", func(f *AdFields) { f.Description = "   " }},
		{"user_id", func(f *AdFields) { f.Author = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := completeFields()
			tt.mutate(&fields)

			_, err := Render("{role} {source} {destination} {flight_date} {description} {user_id}", fields)
			require.ErrorIs(t, err, ErrMissingField)
			require.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestRenderFailsOnUnknownPlaceholder(t *testing.T) {
	_, err := Render("{role} едет в {city}", completeFields())
	require.ErrorIs(t, err, ErrUnknownPlaceholder)
	require.Contains(t, err.Error(), "{city}")
}

func TestCheckPlaceholders(t *testing.T) {
	require.NoError(t, CheckPlaceholders("{role} {source} {destination} {flight_date} {description} {user_id}"))
	require.NoError(t, CheckPlaceholders("текст вообще без плейсхолдеров"))
	require.ErrorIs(t, CheckPlaceholders("{price}"), ErrUnknownPlaceholder)
}

func TestAuthorNamePrefersUsername(t *testing.T) {
	require.Equal(t, "ivan", AuthorName("ivan", 12345))
	require.Equal(t, "12345", AuthorName("", 12345))
}
