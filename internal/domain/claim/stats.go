package claim

// Stats backs the triage dashboard.
type Stats struct {
	StatusCounts map[Status]int64 `json:"statusCounts"`
	Total        int64            `json:"total"`
}

// BuildStats always reports every intake stage, zero when absent; other
// stages appear only once a claim reaches them.
func BuildStats(counts map[Status]int64) Stats {
	out := Stats{StatusCounts: make(map[Status]int64, len(intake))}
	for _, s := range intake {
		out.StatusCounts[s] = 0
	}
	for s, n := range counts {
		if n <= 0 {
			continue
		}
		out.StatusCounts[s] += n
		out.Total += n
	}
	return out
}
