package handler

import (
	"fieldservice/config"
	"fieldservice/di"
	"fieldservice/shared/logger"
	"net/http"
	"sync"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entrypoint. The container is built on the first request and
// reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		handler = di.InitializeService().HTTP.Handler()
	})

	handler.ServeHTTP(w, r)
}
