package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	out := &bytes.Buffer{}
	n := PrintTable(out, []string{"storeID", "name"}, [][]string{
		{"1", "Centro"},
		{"2", "Norte"},
	})
	assert.Equal(t, 2, n)
	assert.Equal(t, "storeID\tname\n1\tCentro\n2\tNorte\n", out.String())
}

func TestPrintTable_SinFilas(t *testing.T) {
	out := &bytes.Buffer{}
	n := PrintTable(out, []string{"a"}, nil)
	assert.Equal(t, 0, n)
	assert.Equal(t, "a\n", out.String(), "el encabezado se imprime aunque no haya filas")
}
