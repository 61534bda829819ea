package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingBool(t *testing.T) {
	assert.True(t, (&Setting{Value: json.RawMessage(`true`)}).Bool(false))
	assert.False(t, (&Setting{Value: json.RawMessage(`false`)}).Bool(true))

	// Ausente ou inválido cai no padrão.
	var nilSetting *Setting
	assert.True(t, nilSetting.Bool(true))
	assert.False(t, (&Setting{}).Bool(false))
	assert.True(t, (&Setting{Value: json.RawMessage(`"sim"`)}).Bool(true))
}
