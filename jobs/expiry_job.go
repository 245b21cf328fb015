package jobs

import (
	"log"

	"github.com/kmuriithi/skillswap/services"
)

// ExpireStaleSessions is the cron entry for the sweep that also runs before
// list queries. Both callers hit the same idempotent UPDATE.
func ExpireStaleSessions() {
	log.Println("Running job: ExpireStaleSessions...")
	services.ExpireStaleSessions()
}
