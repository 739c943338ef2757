package geo_test

import (
	"testing"

	"github.com/jhoicas/retail-cli/internal/domain/geo"
	"github.com/stretchr/testify/assert"
)

func TestDistance_PuntoConsigoMismoEsCero(t *testing.T) {
	casos := [][2]float64{{0, 0}, {10, 10}, {99.5, 0.25}, {-3, 47}}
	for _, c := range casos {
		assert.Zero(t, geo.Distance(c[0], c[1], c[0], c[1]),
			"la distancia de un punto a sí mismo debe ser 0")
	}
}

func TestDistance_Simetrica(t *testing.T) {
	assert.Equal(t,
		geo.Distance(1.5, 2.5, 40, 80),
		geo.Distance(40, 80, 1.5, 2.5),
		"Distance(p,q) debe ser igual a Distance(q,p)")
}

func TestDistance_PitagoricaConocida(t *testing.T) {
	// Triángulo 3-4-5.
	assert.InDelta(t, 5.0, geo.Distance(0, 0, 3, 4), 1e-12)
}

func TestNearby_UmbralEstricto(t *testing.T) {
	// Exactamente 30 NO es cercano; apenas por debajo sí.
	assert.False(t, geo.Nearby(0, 0, 30, 0), "distancia exactamente 30 no es cercana")
	assert.True(t, geo.Nearby(0, 0, 29.999, 0), "distancia menor a 30 es cercana")
	assert.False(t, geo.Nearby(0, 0, 25, 25), "sqrt(1250) > 30 no es cercana")
	assert.True(t, geo.Nearby(10, 10, 10, 10), "distancia 0 es cercana")
}
