package geo

import "math"

// NearbyRadius es el radio (en las unidades planas del esquema) dentro del
// cual una tienda se considera cercana. La comparación es estricta (< 30).
const NearbyRadius = 30.0

// Distance calcula la distancia euclidiana plana entre dos pares
// latitud/longitud. No es distancia geodésica: el esquema original define
// las coordenadas en un plano [0,100]x[0,100] y la paridad de comportamiento
// exige reproducir la fórmula tal cual.
func Distance(lat1, long1, lat2, long2 float64) float64 {
	t1 := (lat1 - lat2) * (lat1 - lat2)
	t2 := (long1 - long2) * (long1 - long2)
	return math.Sqrt(t1 + t2)
}

// Nearby indica si el punto (lat2, long2) está estrictamente a menos de
// NearbyRadius del punto (lat1, long1).
func Nearby(lat1, long1, lat2, long2 float64) bool {
	return Distance(lat1, long1, lat2, long2) < NearbyRadius
}
