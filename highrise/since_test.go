package highrise

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSince(t *testing.T) {
	tests := []struct {
		name    string
		since   string
		wantErr bool
	}{
		{name: "valid", since: "20240101000000"},
		{name: "leap day", since: "20240229235959"},
		{name: "empty", since: "", wantErr: true},
		{name: "too short", since: "2024010100000", wantErr: true},
		{name: "too long", since: "202401010000000", wantErr: true},
		{name: "letters", since: "2024010100000a", wantErr: true},
		{name: "separators", since: "2024-01-01T000", wantErr: true},
		{name: "signed", since: "+2024010100000", wantErr: true},
		{name: "month out of range", since: "20241301000000", wantErr: true},
		{name: "day out of range", since: "20230229000000", wantErr: true},
		{name: "hour out of range", since: "20240101250000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSince(tt.since)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTimestamp)

			var tsErr *TimestampError
			require.ErrorAs(t, err, &tsErr)
			assert.Equal(t, tt.since, tsErr.Value)
		})
	}
}

func TestFormatSince(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2024, 6, 1, 14, 30, 5, 0, loc)

	got := FormatSince(ts)
	assert.Equal(t, "20240601123005", got)
	assert.NoError(t, ValidateSince(got))
}

func TestSinceQueriesRejectInvalidTimestampWithoutRequest(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeXML(w, `<people type="array"/>`)
	})

	_, err := client.GetPeopleSince(context.Background(), "yesterday")
	assert.ErrorIs(t, err, ErrInvalidTimestamp)

	_, err = client.GetCompaniesSince(context.Background(), "2024010100")
	assert.ErrorIs(t, err, ErrInvalidTimestamp)

	assert.Zero(t, calls)
}
