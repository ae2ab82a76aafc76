package dfmt

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dmoreau-labs/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalText(t *testing.T) {
	v := New(decimal.MustFromString("123.456"))
	text, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "123.456", string(text))

	var out Value
	out.Cfg = decimal.DefaultConfig()
	require.NoError(t, out.UnmarshalText(text))
	assert.True(t, out.D.Equal(v.D))
}

func TestMarshalUnmarshalJSON(t *testing.T) {
	v := New(decimal.MustFromString("9.5"))
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "9.5", string(data))

	var out Value
	out.Cfg = decimal.DefaultConfig()
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.D.Equal(v.D))

	var quoted Value
	quoted.Cfg = decimal.DefaultConfig()
	require.NoError(t, quoted.UnmarshalJSON([]byte(`"9.5"`)))
	assert.True(t, quoted.D.Equal(v.D))
}

func TestScanAndFormat(t *testing.T) {
	var v Value
	v.Cfg = decimal.DefaultConfig()
	n, err := fmt.Sscan("42.5", &v)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "42.5", v.D.String())

	s := fmt.Sprintf("%s", New(decimal.MustFromString("7.25")))
	assert.Equal(t, "7.25", s)
}
