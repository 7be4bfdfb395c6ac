package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.ThresholdRepository = (*ThresholdCache)(nil)

// ThresholdCache decorador read-through con TTL sobre el puerto de umbrales.
// La tabla stock_thresholds cambia poco; evita una consulta por petición.
// Cada Get devuelve una copia del snapshot: el motor trata el mapa como
// solo-lectura durante toda la petición aunque el caché se refresque en paralelo.
type ThresholdCache struct {
	upstream repository.ThresholdRepository
	ttl      time.Duration

	mu       sync.RWMutex
	snapshot map[string]int
	loadedAt time.Time
}

// NewThresholdCache construye el decorador. TTL <= 0 desactiva el caché
// (cada Get consulta upstream).
func NewThresholdCache(upstream repository.ThresholdRepository, ttl time.Duration) *ThresholdCache {
	return &ThresholdCache{upstream: upstream, ttl: ttl}
}

// GetAll devuelve el snapshot cacheado si sigue vigente; si no, refresca desde
// upstream. Un fallo del refresco se propaga (no se sirve un snapshot vencido).
func (c *ThresholdCache) GetAll(ctx context.Context) (map[string]int, error) {
	if c.ttl > 0 {
		c.mu.RLock()
		if c.snapshot != nil && time.Since(c.loadedAt) < c.ttl {
			defer c.mu.RUnlock()
			return copyThresholds(c.snapshot), nil
		}
		c.mu.RUnlock()
	}

	fresh, err := c.upstream.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if c.ttl > 0 {
		c.mu.Lock()
		c.snapshot = fresh
		c.loadedAt = time.Now()
		c.mu.Unlock()
	}
	return copyThresholds(fresh), nil
}

func copyThresholds(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
