package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/pulse/pkg/logger"
)

// Run polls the service Config.Polls times and verifies on each round that:
//   - the record count never decreases (the table is append-only),
//   - the figure mirrors a valid aggregate (equal x/y lengths, no negative
//     counts),
//   - the aggregate total never exceeds the record count fetched afterwards
//     (the emitter may append between the two reads, so the later listing
//     can only run ahead).
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get().Named("probe")

	log.Info(ctx, "starting probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("polls", config.Polls),
		logger.Duration("interval", config.Interval),
	)

	c := newClient(config.Timeout)
	prevCount := -1

	for i := 0; i < config.Polls; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return stats, fmt.Errorf("probe interrupted: %w", ctx.Err())
			case <-time.After(config.Interval):
			}
		}

		var fig Figure
		if err := c.getJSON(ctx, config.BaseURL+"/plot", &fig); err != nil {
			return stats, fmt.Errorf("plot fetch failed: %w", err)
		}

		var records []Record
		if err := c.getJSON(ctx, config.BaseURL+"/get_data", &records); err != nil {
			return stats, fmt.Errorf("record fetch failed: %w", err)
		}

		stats.Polls++
		if i == 0 {
			stats.RecordsFirst = len(records)
		}
		stats.RecordsLast = len(records)

		for _, check := range []struct {
			name string
			ok   bool
		}{
			{"table never empty", len(records) >= 1},
			{"record count monotonic", prevCount <= len(records)},
			{"figure has one trace", len(fig.Data) == 1},
			{"figure axes align", len(fig.Data) == 1 && len(fig.Data[0].X) == len(fig.Data[0].Y)},
			{"aggregate total within record count", aggregateTotal(fig) <= len(records)},
			{"no negative counts", noNegativeCounts(fig)},
		} {
			if check.ok {
				stats.ChecksPassed++
				continue
			}
			stats.ChecksFailed++
			log.Warn(ctx, "check failed",
				logger.String("check", check.name),
				logger.Int("poll", i),
				logger.Int("records", len(records)),
			)
		}
		prevCount = len(records)

		if config.Verbose {
			log.Info(ctx, "poll complete",
				logger.Int("poll", i),
				logger.Int("records", len(records)),
				logger.Int("categories", len(fig.Data[0].X)),
			)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Info(ctx, "probe finished",
		logger.Int("polls", stats.Polls),
		logger.Int("recordsFirst", stats.RecordsFirst),
		logger.Int("recordsLast", stats.RecordsLast),
		logger.Int("checksPassed", stats.ChecksPassed),
		logger.Int("checksFailed", stats.ChecksFailed),
		logger.Duration("duration", stats.Duration),
	)

	if stats.ChecksFailed > 0 {
		return stats, fmt.Errorf("%d consistency checks failed", stats.ChecksFailed)
	}
	return stats, nil
}

func aggregateTotal(fig Figure) int {
	if len(fig.Data) != 1 {
		return 0
	}
	total := 0
	for _, y := range fig.Data[0].Y {
		total += y
	}
	return total
}

func noNegativeCounts(fig Figure) bool {
	if len(fig.Data) != 1 {
		return false
	}
	for _, y := range fig.Data[0].Y {
		if y < 0 {
			return false
		}
	}
	return true
}
