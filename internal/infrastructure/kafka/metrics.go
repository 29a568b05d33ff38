package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

var (
	messagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_publisher_messages_total",
			Help: "Messages handed to Kafka by mode and result",
		},
		[]string{"topic", "mode", "result"},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_publisher_retries_total",
			Help: "Retry attempts of the publisher by operation",
		},
		[]string{"op"},
	)
)
