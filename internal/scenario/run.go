package scenario

import (
	"errors"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/ocean/pkg/ocean"
	"github.com/mesh-intelligence/ocean/pkg/types"
)

// Report summarizes the state of an ocean after a scenario has run.
type Report struct {
	Beaches  []BeachReport   `json:"beaches"`
	Reefs    []ReefReport    `json:"reefs"`
	Hunts    []HuntResult    `json:"hunts"`
	Contests []ContestResult `json:"contests"`
}

// BeachReport describes one beach.
type BeachReport struct {
	Name        string              `json:"name"`
	BeachID     string              `json:"beach_id"`
	Size        int                 `json:"size"`
	Fastest     *types.Crab         `json:"fastest,omitempty"`
	ClanCount   int                 `json:"clan_count"`
	LargestClan string              `json:"largest_clan,omitempty"`
	Clans       map[string][]string `json:"clans"`
}

// ReefReport describes one reef.
type ReefReport struct {
	ReefID     string         `json:"reef_id"`
	Population int            `json:"population"`
	Census     map[string]int `json:"census"`
}

// HuntResult records whether a hunting crab ate.
type HuntResult struct {
	Beach int    `json:"beach"`
	Crab  string `json:"crab"`
	Reef  int    `json:"reef"`
	Ate   bool   `json:"ate"`
}

// ContestResult records the outcome of a clan contest. Exactly one of
// Winner, Tie or Error is set.
type ContestResult struct {
	Beach  int    `json:"beach"`
	First  string `json:"first"`
	Second string `json:"second"`
	Winner string `json:"winner,omitempty"`
	Tie    bool   `json:"tie,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Build validates sc and constructs the ocean it describes: beaches with
// their crabs, breedings and clans, then reefs in file order.
func Build(sc *Scenario, logger *zap.Logger) (*ocean.Ocean, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	o := ocean.New(ocean.WithLogger(logger))
	for _, spec := range sc.Beaches {
		beach := ocean.NewBeach()
		for _, c := range spec.Crabs {
			beach.AddCrab(types.NewCrab(c.Name, c.Speed, c.Color, c.Diet))
		}
		for _, br := range spec.Breed {
			beach.BreedCrabs(br.First, br.Second, br.Name)
		}
		for _, clan := range spec.Clans {
			for _, name := range clan.Members {
				beach.AddMemberToClan(clan.ID, name)
			}
		}
		o.AddBeach(beach)
	}
	for _, r := range sc.Reefs {
		o.GenerateReef(r.Minnows, r.Shrimp, r.Clams, r.Algae)
	}
	return o, nil
}

// Run builds the ocean for sc, performs its hunts and then its contests,
// and reports the final state. Contest failures are recorded in the report
// rather than returned.
func Run(sc *Scenario, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	o, err := Build(sc, logger)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Hunts:    make([]HuntResult, 0, len(sc.Hunts)),
		Contests: make([]ContestResult, 0, len(sc.Contests)),
	}

	for _, h := range sc.Hunts {
		beach := o.Beach(h.Beach)
		ate := beach.Hunt(h.Crab, o.Reef(h.Reef))
		report.Hunts = append(report.Hunts, HuntResult{
			Beach: h.Beach,
			Crab:  beach.Crab(h.Crab).Name,
			Reef:  h.Reef,
			Ate:   ate,
		})
		logger.Debug("hunt",
			zap.Int("beach", h.Beach),
			zap.Int("crab", h.Crab),
			zap.Int("reef", h.Reef),
			zap.Bool("ate", ate))
	}

	for _, c := range sc.Contests {
		result := ContestResult{Beach: c.Beach, First: c.First, Second: c.Second}
		winner, ok, err := o.Beach(c.Beach).WinnerClan(c.First, c.Second)
		switch {
		case errors.Is(err, types.ErrEmptyClan):
			result.Error = err.Error()
			logger.Warn("contest rejected", zap.Error(err))
		case err != nil:
			return nil, err
		case ok:
			result.Winner = winner
		default:
			result.Tie = true
		}
		report.Contests = append(report.Contests, result)
	}

	i := 0
	for beach := range o.Beaches() {
		report.Beaches = append(report.Beaches, beachReport(sc.Beaches[i].Name, beach))
		i++
	}
	for reef := range o.Reefs() {
		report.Reefs = append(report.Reefs, ReefReport{
			ReefID:     reef.ReefID,
			Population: reef.Population(),
			Census:     reef.Census(),
		})
	}

	logger.Info("scenario complete",
		zap.Int("beaches", o.BeachCount()),
		zap.Int("reefs", o.ReefCount()),
		zap.Int("hunts", len(report.Hunts)),
		zap.Int("contests", len(report.Contests)))
	return report, nil
}

func beachReport(name string, beach *ocean.Beach) BeachReport {
	cs := beach.ClanSystem()
	br := BeachReport{
		Name:      name,
		BeachID:   beach.BeachID,
		Size:      beach.Size(),
		Fastest:   beach.FastestCrab(),
		ClanCount: cs.ClanCount(),
		Clans:     make(map[string][]string, cs.ClanCount()),
	}
	if id, ok := cs.LargestClanID(); ok {
		br.LargestClan = id
	}
	for _, id := range cs.ClanIDs() {
		br.Clans[id] = cs.ClanMemberNames(id)
	}
	return br
}
