package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed señala que el flujo de entrada terminó (EOF). Distinto de
// la cancelación de contexto pero igual de terminal para el menú.
var ErrInputClosed = errors.New("entrada cerrada")

// Mensajes literales de la interfaz original.
const (
	invalidInputMsg = "Your input is invalid!"
	choiceLabel     = "Please make your choice"
)

// Prompter implementa el ciclo preguntar / parsear / validar / repreguntar.
// Sus métodos solo devuelven valores que cumplen el predicado; la única otra
// salida es un error por cancelación del contexto o por EOF, para que el
// ciclo ilimitado de reintentos siga siendo abortable desde afuera.
type Prompter struct {
	out   io.Writer
	lines chan string
}

// NewPrompter construye el prompter sobre un reader de líneas. Una goroutine
// bombea las líneas a un canal para poder seleccionar contra ctx.Done():
// una lectura bloqueante de terminal no es interrumpible de otra forma.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{out: out, lines: make(chan string)}
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			p.lines <- scanner.Text()
		}
		close(p.lines)
	}()
	return p
}

// Line pregunta y devuelve la línea recortada. Todo prompt termina en ": ".
func (p *Prompter) Line(ctx context.Context, label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

// LineWhere repregunta hasta que la línea cumpla el predicado.
func (p *Prompter) LineWhere(ctx context.Context, label string, pred func(string) bool, msg string) (string, error) {
	for {
		value, err := p.Line(ctx, label)
		if err != nil {
			return "", err
		}
		if pred(value) {
			return value, nil
		}
		fmt.Fprintln(p.out, msg)
	}
}

// Int repregunta hasta recibir un entero. Un fallo de parseo imprime el
// mensaje literal de entrada inválida y no cuenta como valor rechazado.
func (p *Prompter) Int(ctx context.Context, label string) (int, error) {
	for {
		raw, err := p.Line(ctx, label)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(p.out, invalidInputMsg)
			continue
		}
		return value, nil
	}
}

// IntWhere repregunta hasta recibir un entero que cumpla el predicado.
func (p *Prompter) IntWhere(ctx context.Context, label string, pred func(int) bool, msg string) (int, error) {
	for {
		value, err := p.Int(ctx, label)
		if err != nil {
			return 0, err
		}
		if pred(value) {
			return value, nil
		}
		fmt.Fprintln(p.out, msg)
	}
}

// PositiveInt repregunta hasta recibir un entero mayor que cero.
func (p *Prompter) PositiveInt(ctx context.Context, label string) (int, error) {
	return p.IntWhere(ctx, label, func(n int) bool { return n > 0 }, invalidInputMsg)
}

// Float repregunta hasta recibir un número.
func (p *Prompter) Float(ctx context.Context, label string) (float64, error) {
	for {
		raw, err := p.Line(ctx, label)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(p.out, invalidInputMsg)
			continue
		}
		return value, nil
	}
}

// Choice lee la opción de un menú.
func (p *Prompter) Choice(ctx context.Context) (int, error) {
	return p.Int(ctx, choiceLabel)
}
