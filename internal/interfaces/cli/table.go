package cli

import (
	"fmt"
	"io"
	"strings"
)

// PrintTable imprime el encabezado una vez y luego una fila por línea con
// los valores separados por tab, igual que el volcado de resultados de la
// interfaz original. Devuelve el número de filas impresas.
func PrintTable(w io.Writer, header []string, rows [][]string) int {
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return len(rows)
}
