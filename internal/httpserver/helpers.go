package httpserver

import (
	"context"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/example/smart-shop/internal/logging"
	"github.com/example/smart-shop/internal/models"
	"github.com/example/smart-shop/internal/mykafka"
	"github.com/example/smart-shop/internal/search"
)

const sideEffectTimeout = 5 * time.Second

// publish sends a domain event, best effort. The producer is nil when no
// brokers are configured.
func publish(c echo.Context, p *mykafka.Producer, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), sideEffectTimeout)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("kafka publish failed", "topic", topic, "error", err)
	}
}

func indexProduct(c echo.Context, es *elasticsearch.Client, index string, prod models.Product) {
	if es == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), sideEffectTimeout)
	defer cancel()
	if err := search.IndexProduct(ctx, es, index, prod); err != nil {
		logging.FromContext(c.Request().Context()).Warn("es index failed", "error", err)
	}
}

func deindexProduct(c echo.Context, es *elasticsearch.Client, index string, id uuid.UUID) {
	if es == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), sideEffectTimeout)
	defer cancel()
	if err := search.DeleteProduct(ctx, es, index, id); err != nil {
		logging.FromContext(c.Request().Context()).Warn("es deindex failed", "error", err)
	}
}
