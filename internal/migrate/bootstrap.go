package migrate

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// BaselineVersion is the oldest schema version the engine can reason about.
// Stores that hold data but no version marker predate marker support and
// are assumed to sit at this version.
const BaselineVersion = "0.6.0"

// domainCollections are the core entity collections counted when deciding
// whether an unmarked store is brand new or a legacy install.
var domainCollections = []string{
	"organizations",
	"projects",
	"branches",
	"elements",
	"artifacts",
	"webhooks",
}

// RecordProber counts persisted domain records.
type RecordProber interface {
	CountDomainRecords() (int64, error)
}

type appProber struct {
	app core.App
}

func NewRecordProber(app core.App) RecordProber {
	return &appProber{app: app}
}

func (p *appProber) CountDomainRecords() (int64, error) {
	var total int64
	for _, name := range domainCollections {
		if _, err := p.app.FindCollectionByNameOrId(name); err != nil {
			continue // collection not created yet, nothing to count
		}
		n, err := p.app.CountRecords(name)
		if err != nil {
			return 0, fmt.Errorf("count %s records: %w", name, err)
		}
		total += n
	}
	return total, nil
}

// resolveInstalled decides where migrations start from when the store has
// never recorded a version. A store without any domain data is a fresh
// install: the marker is written at the newest known version directly and
// no steps run. A store with data is a legacy install sitting at the
// baseline, so the full forward path replays from there.
func (e *Engine) resolveInstalled(newest Version) (Version, bool, error) {
	total, err := e.prober.CountDomainRecords()
	if err != nil {
		return Version{}, false, err
	}

	if total > 0 {
		e.logger.Info("unmarked data found, treating store as a legacy install",
			"assumed", e.baseline.String(),
			"records", total)
		return e.baseline, false, nil
	}

	e.logger.Info("empty store, recording newest schema version", "version", newest.String())
	if err := e.marker.Write(newest); err != nil {
		return Version{}, false, err
	}
	return newest, true, nil
}
