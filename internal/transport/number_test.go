package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain number", input: `{"price": 19.99}`, want: 19.99},
		{name: "integer", input: `{"price": 20}`, want: 20},
		{name: "numeric string", input: `{"price": "19.99"}`, want: 19.99},
		{name: "padded numeric string", input: `{"price": " 7 "}`, want: 7},
		{name: "null leaves zero", input: `{"price": null}`, want: 0},
		{name: "empty string", input: `{"price": ""}`, wantErr: true},
		{name: "garbage string", input: `{"price": "cheap"}`, wantErr: true},
		{name: "bool", input: `{"price": true}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var body struct {
				Price Number `json:"price"`
			}
			err := json.Unmarshal([]byte(tc.input), &body)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, body.Price.Float())
		})
	}
}

func TestNumberPointerDistinguishesAbsent(t *testing.T) {
	var body struct {
		Price *Number `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))
	assert.Nil(t, body.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "0"}`), &body))
	require.NotNil(t, body.Price)
	assert.Equal(t, 0.0, body.Price.Float())
}
