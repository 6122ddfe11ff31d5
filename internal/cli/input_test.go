package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  Acme  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Company", &out)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got)
	assert.Contains(t, out.String(), "Company")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("Acme"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Company", &out)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(reader, "Company", &out)
	require.Error(t, err)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}
	for _, tt := range tests {
		reader := bufio.NewReader(strings.NewReader(tt.answer))
		var out bytes.Buffer
		assert.Equal(t, tt.want, confirm(reader, "Proceed?", &out), "answer %q", tt.answer)
	}
}
