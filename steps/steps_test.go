// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		step      int
		data      map[string]any
		wantField string
		wantErr   bool
	}{
		{
			name: "valid identity step",
			step: 2,
			data: map[string]any{"idNumber": "123456789012345678", "realName": "测试用户"},
		},
		{
			name: "valid bank step",
			step: 7,
			data: map[string]any{"bankCardNumber": "1234567890123456"},
		},
		{
			name: "valid contacts step",
			step: 5,
			data: map[string]any{
				"contact1Name": "Alice", "contact1Phone": "+5211111111",
				"contact2Name": "Bob", "contact2Phone": "+5222222222",
			},
		},
		{
			name:      "identity missing realName",
			step:      2,
			data:      map[string]any{"idNumber": "123456789012345678"},
			wantField: "realName",
			wantErr:   true,
		},
		{
			name:      "empty string counts as missing",
			step:      7,
			data:      map[string]any{"bankCardNumber": ""},
			wantField: "bankCardNumber",
			wantErr:   true,
		},
		{
			name:      "nil value counts as missing",
			step:      2,
			data:      map[string]any{"idNumber": nil, "realName": "x"},
			wantField: "idNumber",
			wantErr:   true,
		},
		{
			name:      "contacts missing second phone",
			step:      5,
			data:      map[string]any{"contact1Name": "Alice", "contact1Phone": "+52", "contact2Name": "Bob"},
			wantField: "contact2Phone",
			wantErr:   true,
		},
		{
			name: "extra fields ignored",
			step: 2,
			data: map[string]any{"idNumber": "1", "realName": "x", "nickname": "ignored"},
		},
		{
			name: "non-string values accepted",
			step: 1,
			data: map[string]any{"loanAmount": 5000.0, "loanPeriod": 12.0},
		},
		{
			name:    "step zero rejected",
			step:    0,
			data:    map[string]any{},
			wantErr: true,
		},
		{
			name:    "step beyond range rejected",
			step:    8,
			data:    map[string]any{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := Validate(tt.step, tt.data)
			if !tt.wantErr {
				require.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Contains(t, verr.Error(), tt.wantField)
		})
	}
}

func TestLookup(t *testing.T) {
	for step := 1; step <= Count; step++ {
		def, ok := Lookup(step)
		require.True(t, ok, "step %d should be defined", step)
		assert.Equal(t, step, def.Step)
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Required)
	}

	_, ok := Lookup(Count + 1)
	assert.False(t, ok)
}

func TestName(t *testing.T) {
	assert.Equal(t, "identity", Name(2))
	assert.Equal(t, "bank", Name(7))
	assert.Equal(t, "", Name(99))
}
