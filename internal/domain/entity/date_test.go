package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-03-05 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d.String())
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		A Date  `json:"a"`
		B Date  `json:"b"`
		C *Date `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"2024-01-31","b":"2024-01-31T23:30:00Z","c":null}`), &payload))
	assert.Equal(t, "2024-01-31", payload.A.String())
	assert.Equal(t, "2024-01-31", payload.B.String())
	assert.Nil(t, payload.C)

	out, err := json.Marshal(struct {
		D Date `json:"d"`
		Z Date `json:"z"`
	}{D: payload.A.AddDays(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-02-01","z":null}`, string(out))

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"tomorrow"`), &bad))
}

func TestCityIDAndAreas(t *testing.T) {
	assert.Equal(t, "city-007", CityID(7))
	assert.Equal(t, "city-1234", CityID(1234))

	assert.Equal(t, []string{"Cairo", "giza"}, NormalizeAreas([]string{" Cairo ", "", "giza", "cairo"}))
}
