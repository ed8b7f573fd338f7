package main

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/RogerGabeller-ml/advent-of-code-bot/internal/discord"
)

func healthMonitor(s *discord.Session, port string) {
	http.HandleFunc("/healthy", func(w http.ResponseWriter, r *http.Request) {
		latency := s.HeartbeatLatency()
		degraded := 10 * time.Second

		if latency >= degraded {
			http.Error(w, fmt.Sprintf("discord latency=%d ms, expecting < %d ms\n", latency.Milliseconds(), degraded.Milliseconds()), 500)
			return
		}
		fmt.Fprintf(w, "OK\n")
	})

	log.Fatal(http.ListenAndServe(":"+port, nil))
}
