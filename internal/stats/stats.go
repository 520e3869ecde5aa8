// Package stats tracks process-wide chat usage counters. The tracker is an
// injectable value owned by main and passed into the handlers, never a
// package-level global, so tests get isolated instances.
package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Tracker holds the usage counters. Counters are atomic: the HTTP server
// handles requests concurrently. Nothing is persisted; a restart zeroes
// everything.
type Tracker struct {
	totalMessages  atomic.Int64
	aiResponses    atomic.Int64
	localResponses atomic.Int64
	leadsDetected  atomic.Int64
	hotLeads       atomic.Int64
	warmLeads      atomic.Int64
	startUnixNano  atomic.Int64
}

// NewTracker returns a tracker with the uptime clock started.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.startUnixNano.Store(time.Now().UnixNano())
	return t
}

// RecordMessage counts one accepted chat message. Validation failures must
// not reach this.
func (t *Tracker) RecordMessage() { t.totalMessages.Add(1) }

// RecordLocal counts a canned or fallback response.
func (t *Tracker) RecordLocal() { t.localResponses.Add(1) }

// RecordAI counts a successful model completion.
func (t *Tracker) RecordAI() { t.aiResponses.Add(1) }

// RecordHotLead counts a Caliente classification.
func (t *Tracker) RecordHotLead() {
	t.hotLeads.Add(1)
	t.leadsDetected.Add(1)
}

// RecordWarmLead counts a Tibio or Tibio-Caliente classification.
func (t *Tracker) RecordWarmLead() {
	t.warmLeads.Add(1)
	t.leadsDetected.Add(1)
}

// Reset zeroes all counters and restarts the uptime clock. Intended for
// development and tests only.
func (t *Tracker) Reset() {
	t.totalMessages.Store(0)
	t.aiResponses.Store(0)
	t.localResponses.Store(0)
	t.leadsDetected.Store(0)
	t.hotLeads.Store(0)
	t.warmLeads.Store(0)
	t.startUnixNano.Store(time.Now().UnixNano())
}

// Snapshot is a point-in-time copy of the counters with derived figures.
type Snapshot struct {
	TotalMessages   int64  `json:"mensajes_totales"`
	AIResponses     int64  `json:"respuestas_ia"`
	LocalResponses  int64  `json:"respuestas_locales"`
	LeadsDetected   int64  `json:"leads_detectados"`
	HotLeads        int64  `json:"leads_calientes"`
	WarmLeads       int64  `json:"leads_tibios"`
	UptimeSeconds   int64  `json:"uptime_segundos"`
	UptimeHours     string `json:"uptime_horas"`
	LocalEfficiency string `json:"eficiencia_local"`
	LeadConversion  string `json:"conversion_leads"`
	Summary         string `json:"mensaje"`
}

// Snapshot reads the counters and computes the derived percentages.
func (t *Tracker) Snapshot() Snapshot {
	total := t.totalMessages.Load()
	local := t.localResponses.Load()
	leads := t.leadsDetected.Load()
	uptime := int64(time.Since(time.Unix(0, t.startUnixNano.Load())).Seconds())

	efficiency := int64(0)
	conversion := int64(0)
	if total > 0 {
		efficiency = local * 100 / total
		conversion = leads * 100 / total
	}

	return Snapshot{
		TotalMessages:   total,
		AIResponses:     t.aiResponses.Load(),
		LocalResponses:  local,
		LeadsDetected:   leads,
		HotLeads:        t.hotLeads.Load(),
		WarmLeads:       t.warmLeads.Load(),
		UptimeSeconds:   uptime,
		UptimeHours:     fmt.Sprintf("%.2f", float64(uptime)/3600),
		LocalEfficiency: fmt.Sprintf("%d%% respuestas sin IA", efficiency),
		LeadConversion:  fmt.Sprintf("%d%%", conversion),
		Summary: fmt.Sprintf("Sistema funcionando %ds. %d%% respuestas locales. %d leads detectados.",
			uptime, efficiency, leads),
	}
}
