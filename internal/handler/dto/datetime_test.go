//go:build unit

package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"peershare/internal/handler/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeRoundTrip(t *testing.T) {
	in := dto.NewDateTime(time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC))

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01 10:30:00"`, string(raw))

	var out dto.DateTime
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, in.Equal(out.Time))
}

func TestDateTimeRejectsOtherLayouts(t *testing.T) {
	var out dto.DateTime
	assert.Error(t, json.Unmarshal([]byte(`"2025-06-01T10:30:00Z"`), &out))
	assert.Error(t, json.Unmarshal([]byte(`"01.06.2025"`), &out))
}
