package genjson_test

import (
	"testing"

	"github.com/Invicton-Labs/go-lists/genjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name"`
	Values []int  `json:"values"`
}

func TestMarshalUnmarshal(t *testing.T) {
	data, err := genjson.Marshal(sample{Name: "primes", Values: []int{2, 3, 5}})
	require.Nil(t, err)
	assert.JSONEq(t, `{"name":"primes","values":[2,3,5]}`, string(data))

	decoded, err := genjson.Unmarshal[sample](data)
	require.Nil(t, err)
	assert.Equal(t, "primes", decoded.Name)
	assert.Equal(t, []int{2, 3, 5}, decoded.Values)
}

func TestUnmarshalInvalid(t *testing.T) {
	_, err := genjson.Unmarshal[sample]([]byte(`{"name":`))
	require.NotNil(t, err)
	assert.NotEmpty(t, err.Stacks())
}
