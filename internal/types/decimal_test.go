package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    decimal.Decimal
		wantErr bool
	}{
		{name: "integer", body: `{"v":12}`, want: decimal.NewFromInt(12)},
		{name: "fraction", body: `{"v":5.5}`, want: decimal.RequireFromString("5.5")},
		{name: "negative", body: `{"v":-1}`, want: decimal.NewFromInt(-1)},
		{name: "quoted", body: `{"v":"12"}`, wantErr: true},
		{name: "boolean", body: `{"v":true}`, wantErr: true},
		{name: "object", body: `{"v":{}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				V Optional[Number] `json:"v"`
			}
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				var typeErr *json.UnmarshalTypeError
				require.ErrorAs(t, err, &typeErr)
				assert.Equal(t, "v", typeErr.Field)
				return
			}
			require.NoError(t, err)
			v, ok := req.V.Get()
			require.True(t, ok)
			assert.True(t, tt.want.Equal(v.Decimal))
		})
	}
}

func TestNumber_NullAndMarshal(t *testing.T) {
	var req struct {
		V *Number `json:"v"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"v":null}`), &req))
	assert.Nil(t, req.V)

	out, err := json.Marshal(NewNumber(decimal.RequireFromString("750.50")))
	require.NoError(t, err)
	assert.Equal(t, "750.5", string(out))
}

func TestApplyNumber(t *testing.T) {
	dst := decimal.NewFromInt(20)

	ApplyNumber(&dst, Optional[Number]{})
	assert.True(t, dst.Equal(decimal.NewFromInt(20)))

	ApplyNumber(&dst, Null[Number]())
	assert.True(t, dst.Equal(decimal.NewFromInt(20)))

	ApplyNumber(&dst, Some(NewNumber(decimal.RequireFromString("5.5"))))
	assert.True(t, dst.Equal(decimal.RequireFromString("5.5")))
}
