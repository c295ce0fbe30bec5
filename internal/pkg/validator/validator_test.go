package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	InputDir string `flag:"input-dir" validate:"required"`
	Language string `flag:"language" validate:"required"`
	Verbose  bool   `flag:"verbose"`
}

func TestValidateOk(t *testing.T) {
	value := testStruct{InputDir: "./data", Language: "en"}
	assert.NoError(t, Validate(value))
}

func TestValidateError(t *testing.T) {
	value := testStruct{}
	err := Validate(value)
	assert.Error(t, err)
	assert.Equal(t, "- input-dir is a required field\n- language is a required field", err.Error())
}
