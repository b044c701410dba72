package mappings

import "image/color"

type MetricMapping struct {
	Label string
}

var MetricMappings = map[string]MetricMapping{
	"processors": {
		Label: "Processors",
	},
	"speedup": {
		Label: "Speedup",
	},
	"efficiency": {
		Label: "Efficiency (Speedup / p)",
	},
	"phase_time": {
		Label: "Time (seconds)",
	},
}

// GetMetricMapping falls back to the raw key as label for unknown metrics.
func GetMetricMapping(metric string) MetricMapping {
	if m, ok := MetricMappings[metric]; ok {
		return m
	}
	return MetricMapping{Label: metric}
}

const (
	LinearReferenceLabel = "Linear"
	IdealReferenceLabel  = "Ideal"
)

type PhaseStyle struct {
	Label string
	Color color.RGBA
}

// PhaseStyles is indexed by phase number minus one, bottom segment first.
var PhaseStyles = [4]PhaseStyle{
	{Label: "Phase 1 (Local Sort)", Color: Blue},
	{Label: "Phase 2 (Sampling)", Color: Orange},
	{Label: "Phase 3 (Partition)", Color: Green},
	{Label: "Phase 4 (Merge)", Color: Red},
}
