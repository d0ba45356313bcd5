package genjson

import (
	"encoding/json"

	"github.com/Invicton-Labs/go-stackerr"
)

func Unmarshal[T any](data []byte) (v T, err stackerr.Error) {
	if err := json.Unmarshal(data, &v); err != nil {
		return v, stackerr.Wrap(err)
	}
	return v, nil
}

// Marshal encodes v as compact JSON.
func Marshal[T any](v T) ([]byte, stackerr.Error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, stackerr.Wrap(err)
	}
	return data, nil
}
