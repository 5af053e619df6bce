package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFromJSON(t *testing.T) {
	out, err := CSVFromJSON([]byte(`[{"a":1,"b":"x,y"}]`))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\"x,y\"\n", out)
}

func TestCSVFromJSONHeaderFollowsFirstRowOrder(t *testing.T) {
	out, err := CSVFromJSON([]byte(`[{"b":"2","a":"1"},{"a":"3","b":"4"}]`))
	require.NoError(t, err)
	assert.Equal(t, "b,a\n2,1\n4,3\n", out)
}

func TestCSVFromJSONEscapesQuotes(t *testing.T) {
	out, err := CSVFromJSON([]byte(`[{"name":"says \"hi\""}]`))
	require.NoError(t, err)
	assert.Equal(t, "name\n\"says \"\"hi\"\"\"\n", out)
}

func TestCSVFromJSONMissingCellsAreEmpty(t *testing.T) {
	out, err := CSVFromJSON([]byte(`[{"a":"1","b":"2"},{"a":"3"}]`))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n3,\n", out)
}

func TestCSVFromJSONEmptyArray(t *testing.T) {
	out, err := CSVFromJSON([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestCSVFromJSONBadInput(t *testing.T) {
	_, err := CSVFromJSON([]byte(`{"not":"an array"}`))
	assert.Error(t, err)
}
