// Package keepalive periodically pings a health URL so free-tier
// hosting does not spin the process down between visits.
package keepalive

import (
	"log"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	url    string
	client *http.Client
	cron   *cron.Cron
}

func NewScheduler(url string) *Scheduler {
	return &Scheduler{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Start schedules the ping every 10 minutes. A no-op when no URL is
// configured.
func (s *Scheduler) Start() {
	if s.url == "" {
		return
	}

	c := cron.New()
	_, err := c.AddFunc("*/10 * * * *", func() {
		s.ping()
	})
	if err != nil {
		log.Printf("Failed to create keepalive job: %v", err)
		return
	}

	log.Printf("Keepalive scheduler started (pinging %s every 10 minutes)", s.url)
	c.Start()
	s.cron = c
}

// Stop halts the scheduler if it was started.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) ping() {
	resp, err := s.client.Get(s.url)
	if err != nil {
		log.Printf("Keepalive ping failed: %v", err)
		return
	}
	defer resp.Body.Close()
	log.Printf("Keepalive ping: %s -> %d", s.url, resp.StatusCode)
}
