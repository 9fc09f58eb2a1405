package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

type runResult struct {
	code   int
	out    string
	prompt string
	errOut string
}

func runWith(t *testing.T, input string, args ...string) runResult {
	t.Helper()
	color.NoColor = true
	var out, prompt, errOut bytes.Buffer
	code := run(args, strings.NewReader(input), &out, &prompt, &errOut)
	return runResult{code: code, out: out.String(), prompt: prompt.String(), errOut: errOut.String()}
}

func TestRun_Int(t *testing.T) {
	res := runWith(t, "42\n", "-prompt", "Number: ", "-type", "int")
	assert.Equal(t, exitOK, res.code)
	assert.Equal(t, "42\n", res.out)
	assert.Equal(t, "Number: ", res.prompt)
	assert.Empty(t, res.errOut)
}

func TestRun_DefaultIsRawText(t *testing.T) {
	res := runWith(t, "  hello world\n")
	assert.Equal(t, exitOK, res.code)
	assert.Equal(t, "  hello world\n", res.out)
}

func TestRun_ConversionError(t *testing.T) {
	res := runWith(t, "abc\n", "-type", "int")
	assert.Equal(t, exitConversion, res.code)
	assert.Equal(t, "input type must be int\n", res.errOut)
	assert.Empty(t, res.out)
}

func TestRun_Values(t *testing.T) {
	res := runWith(t, "banana\n", "-values", "apple, orange, peach")
	assert.Equal(t, exitMembership, res.code)
	assert.Equal(t, "input must be apple, orange or peach\n", res.errOut)

	res = runWith(t, "peach\n", "-values", "apple,orange,peach")
	assert.Equal(t, exitOK, res.code)
	assert.Equal(t, "peach\n", res.out)
}

func TestRun_Range(t *testing.T) {
	tests := []struct {
		input, rng, want string
	}{
		{"-1", "0:10", "input must be greater than or equal to 0\n"},
		{"15", "0:10", "input must be less than 10\n"},
		{"3", "0:20:2", "input must be in 0, 2, 4, 6, 8 , ..., 18\n"},
	}
	for _, tt := range tests {
		res := runWith(t, tt.input+"\n", "-type", "int", "-range", tt.rng)
		assert.Equal(t, exitMembership, res.code, tt.rng)
		assert.Equal(t, tt.want, res.errOut)
	}
}

func TestRun_FloatRange(t *testing.T) {
	res := runWith(t, "2\n", "-type", "float", "-range", "0:5")
	assert.Equal(t, exitOK, res.code)
	assert.Equal(t, "2.0\n", res.out)
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown type", []string{"-type", "uuid"}, `unknown -type "uuid"`},
		{"values and range", []string{"-values", "1", "-range", "0:2"}, "mutually exclusive"},
		{"extra args", []string{"extra"}, "unexpected arguments: extra"},
		{"range for str", []string{"-range", "0:2"}, "not supported"},
		{"bad range", []string{"-type", "int", "-range", "0"}, "must be start:stop[:step]"},
		{"zero step", []string{"-type", "int", "-range", "0:10:0"}, "step must not be zero"},
		{"bad value", []string{"-type", "int", "-values", "1,x"}, `"x" is not a int`},
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runWith(t, "1\n", tt.args...)
			assert.Equal(t, exitError, res.code)
			assert.Contains(t, res.errOut, tt.want)
		})
	}
}

func TestRun_NoInput(t *testing.T) {
	res := runWith(t, "", "-type", "int")
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.errOut, "sanitize: no input")
}

func TestRun_Help(t *testing.T) {
	res := runWith(t, "", "-h")
	assert.Equal(t, exitOK, res.code)
	assert.Contains(t, res.errOut, "Usage: sanitize")
	assert.Contains(t, res.errOut, "-range")
}
