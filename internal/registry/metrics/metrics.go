package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for registry mutations.
type Metrics struct {
	ProfilesUpdated prometheus.Counter
	SkillsAdded     prometheus.Counter
	SkillsVerified  prometheus.Counter
	SkillsRevoked   prometheus.Counter
}

// New creates and registers all registry metrics on the default registerer.
func New() *Metrics {
	return &Metrics{
		ProfilesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attest_profiles_updated_total",
			Help: "Total number of successful profile writes",
		}),
		SkillsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attest_skills_added_total",
			Help: "Total number of skills declared",
		}),
		SkillsVerified: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attest_skills_verified_total",
			Help: "Total number of successful peer verifications",
		}),
		SkillsRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attest_skills_revoked_total",
			Help: "Total number of skills revoked",
		}),
	}
}

func (m *Metrics) IncrementProfilesUpdated() { m.ProfilesUpdated.Inc() }
func (m *Metrics) IncrementSkillsAdded()     { m.SkillsAdded.Inc() }
func (m *Metrics) IncrementSkillsVerified()  { m.SkillsVerified.Inc() }
func (m *Metrics) IncrementSkillsRevoked()   { m.SkillsRevoked.Inc() }
