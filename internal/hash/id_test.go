package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestIDDistinguishesBranches(t *testing.T) {
	giant := ID("RV_RMS_All_Giant_LMT_alpha")
	dwarf := ID("RV_RMS_All_Dwarf_LMT_alpha")

	assert.NotEqual(t, giant, dwarf)
	assert.Equal(t, giant, ID("RV_RMS_All_Giant_LMT_alpha"))
}
