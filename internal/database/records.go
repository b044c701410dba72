package database

import (
	"fmt"
	"time"

	"psrs-report/internal/labels"
	"psrs-report/internal/metrics"
	"psrs-report/internal/table"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

const (
	SpeedupMeasurement = "psrs_speedup"
	PhaseMeasurement   = "psrs_phases"
)

// Record is one exported measurement row. It is kept independent of the
// client's point type so it can be spooled as JSON.
type Record struct {
	Measurement string                 `json:"measurement"`
	Tags        map[string]string      `json:"tags"`
	Fields      map[string]interface{} `json:"fields"`
	Time        time.Time              `json:"time"`
}

func (r Record) Point() *write.Point {
	return influxdb2.NewPoint(r.Measurement, r.Tags, r.Fields, r.Time)
}

func recordTags(n, p int, dataset string) map[string]string {
	return map[string]string{
		"n":          fmt.Sprintf("%d", n),
		"p":          fmt.Sprintf("%d", p),
		"size_label": labels.SizeLabel(n),
		"dataset":    dataset,
	}
}

// BuildSpeedupRecords emits one record per (n, p) cell with its speedup and
// derived efficiency.
func BuildSpeedupRecords(st *table.SpeedupTable, dataset string, ts time.Time) []Record {
	eff := metrics.EfficiencyTable(st)
	records := make([]Record, 0, st.Len()*len(st.Processors))
	for i, n := range st.Sizes {
		for j, p := range st.Processors {
			records = append(records, Record{
				Measurement: SpeedupMeasurement,
				Tags:        recordTags(n, p, dataset),
				Fields: map[string]interface{}{
					"speedup":    st.Speedup[i][j],
					"efficiency": eff[i][j],
				},
				Time: ts,
			})
		}
	}
	return records
}

func BuildPhaseRecords(pt *table.PhaseTable, dataset string, ts time.Time) []Record {
	records := make([]Record, 0, len(pt.Rows))
	for _, row := range pt.Rows {
		fields := map[string]interface{}{
			"total": row.Total,
		}
		for k, c := range table.PhaseColumns {
			fields[c] = row.Phases[k]
		}
		records = append(records, Record{
			Measurement: PhaseMeasurement,
			Tags:        recordTags(row.N, row.P, dataset),
			Fields:      fields,
			Time:        ts,
		})
	}
	return records
}
