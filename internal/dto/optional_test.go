package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type optionalPayload struct {
	Name  Optional[string]  `json:"name"`
	Score Optional[float64] `json:"score"`
}

func TestOptionalAbsentFieldStaysUnset(t *testing.T) {
	var payload optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"test"}`), &payload))

	require.True(t, payload.Name.Set)
	require.NotNil(t, payload.Name.Value)
	require.Equal(t, "test", *payload.Name.Value)

	require.False(t, payload.Score.Set)
	require.Nil(t, payload.Score.Value)
}

func TestOptionalExplicitNull(t *testing.T) {
	var payload optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"score":null}`), &payload))

	require.True(t, payload.Score.Set)
	require.Nil(t, payload.Score.Value)
}

func TestOptionalValue(t *testing.T) {
	var payload optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"score":3.5}`), &payload))

	require.True(t, payload.Score.Set)
	require.NotNil(t, payload.Score.Value)
	require.Equal(t, 3.5, *payload.Score.Value)
}

func TestOptionalMarshal(t *testing.T) {
	encoded, err := json.Marshal(NewOptional("x"))
	require.NoError(t, err)
	require.JSONEq(t, `"x"`, string(encoded))

	encoded, err = json.Marshal(NullOptional[string]())
	require.NoError(t, err)
	require.Equal(t, "null", string(encoded))
}

func TestOptionalSliceValue(t *testing.T) {
	var payload struct {
		IDs Optional[[]uint] `json:"ids"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"ids":[1,2,3]}`), &payload))

	require.True(t, payload.IDs.Set)
	require.NotNil(t, payload.IDs.Value)
	require.Equal(t, []uint{1, 2, 3}, *payload.IDs.Value)
}
