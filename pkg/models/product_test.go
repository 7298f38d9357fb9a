package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRefUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		check   func(t *testing.T, ref ProductRef)
	}{
		{
			name: "bare string becomes plain variant",
			raw:  `"Widget Pro"`,
			check: func(t *testing.T, ref ProductRef) {
				assert.Equal(t, "Widget Pro", ref.Name)
				assert.Nil(t, ref.Spec)
				assert.Equal(t, "Widget Pro", ref.DisplayName())
			},
		},
		{
			name: "object becomes structured variant",
			raw:  `{"name":"Widget Pro","price":49.99,"currency":"USD","features":["wireless"]}`,
			check: func(t *testing.T, ref ProductRef) {
				require.NotNil(t, ref.Spec)
				assert.Empty(t, ref.Name)
				assert.Equal(t, "Widget Pro", ref.Spec.Name)
				assert.Equal(t, 49.99, ref.Spec.Price)
				assert.Equal(t, []string{"wireless"}, ref.Spec.Features)
				assert.Equal(t, "Widget Pro", ref.DisplayName())
			},
		},
		{
			name:    "object without name is rejected",
			raw:     `{"price":10}`,
			wantErr: true,
		},
		{
			name:    "other JSON kinds are rejected",
			raw:     `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref ProductRef
			err := json.Unmarshal([]byte(tt.raw), &ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, ref)
		})
	}
}

func TestProductRefMarshalRoundTrip(t *testing.T) {
	list := []ProductRef{
		{Name: "Widget"},
		{Spec: &ProductSpec{Name: "Widget Pro", Price: 49.99}},
	}
	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `["Widget",{"name":"Widget Pro","price":49.99}]`, string(data))

	var decoded []ProductRef
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, list, decoded)
}
