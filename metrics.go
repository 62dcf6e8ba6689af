package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	renderCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finboard_renders_total",
		Help: "Dashboard render cycles by dataset source.",
	}, []string{"source"})

	uploadCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finboard_uploads_total",
		Help: "Upload attempts by outcome.",
	}, []string{"result"})
)
