package lpmap

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMap_JSON(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)
	m.Insert("b", 2)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1,"b":2}`, string(data))

	var out HashMap[string, int]
	out.Insert("stale", 9)
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, map[string]int{"a": 1, "b": 2}, out.ToMap())
	checkInvariants(t, &out)

	require.Error(t, json.Unmarshal([]byte(`{"a":"x"}`), &out))
	require.Equal(t, 2, out.Size(), "failed decode must leave the map unchanged")
}

func TestHashMap_JSONIntKeys(t *testing.T) {
	m := NewFromMap(map[int]string{1: "x", 20: "y"})
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"1":"x","20":"y"}`, string(data))

	c := New[int, string]()
	require.NoError(t, c.UnmarshalJSON(data))
	require.Equal(t, m.ToMap(), c.ToMap())
}

func TestSetDefaultJSONMarshal(t *testing.T) {
	var marshals, unmarshals int
	SetDefaultJSONMarshal(
		func(v any) ([]byte, error) {
			marshals++
			return json.Marshal(v)
		},
		func(data []byte, v any) error {
			unmarshals++
			return json.Unmarshal(data, v)
		},
	)
	defer SetDefaultJSONMarshal(nil, nil)

	m := NewFromEntries[string, int](nil, EntryOf[string, int]{Key: "k", Value: 1})
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	require.NoError(t, m.UnmarshalJSON(data))
	require.Equal(t, 1, marshals)
	require.Equal(t, 1, unmarshals)
}

func TestHashMap_String(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)
	s := m.String()
	require.True(t, strings.HasPrefix(s, "HashMap["), s)
	require.Contains(t, s, "a:1")
}
