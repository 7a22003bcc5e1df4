// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics exposes Prometheus counters for the business events worth
// watching: generations, purchases, downloads and their failures.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandforge_generations_total",
		Help: "Brand copy generations by style.",
	}, []string{"style"})

	Purchases = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandforge_purchases_total",
		Help: "Completed mock purchases by kind (template or subscription).",
	}, []string{"kind"})

	Downloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandforge_downloads_total",
		Help: "Completed bundle downloads by template tier.",
	}, []string{"tier"})

	Failures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandforge_request_failures_total",
		Help: "API failures by error code.",
	}, []string{"code"})
)

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
