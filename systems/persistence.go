package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/scoring"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedResults is the outcome of the last finished round as stored on disk.
type SavedResults struct {
	End     string         `json:"end"`
	Result  scoring.Result `json:"result"`
	Throws  int            `json:"throws"`
	Catches int            `json:"catches"`
	Splits  int            `json:"splits"`
	NewBest bool           `json:"newBest"`
}

// itemStore is the part of the gdata manager persistence uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence opens the gdata storage for results.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadBestScore returns the best stored score, 0 if there is none.
func LoadBestScore() int {
	if store == nil {
		return 0
	}
	data, err := store.LoadItem(cfg.Persistence.BestKey)
	if err != nil {
		log.Printf("Warning: Could not load best score: %v", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}
	var best int
	if err := json.Unmarshal(data, &best); err != nil {
		log.Printf("Warning: Could not parse best score: %v", err)
		return 0
	}
	return best
}

// LoadLastResults returns the results of the previous round, or nil.
func LoadLastResults() (*SavedResults, error) {
	if store == nil {
		return nil, nil
	}
	data, err := store.LoadItem(cfg.Persistence.ResultsKey)
	if err != nil {
		log.Printf("Warning: Could not load results: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	var res SavedResults
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &res, nil
}

// CollectResults snapshots the finished round.
func CollectResults(ecs *ecs.ECS) SavedResults {
	res := SavedResults{Result: RoundResult(ecs)}
	if entry, ok := components.Arena.First(ecs.World); ok {
		arena := components.Arena.Get(entry)
		res.End = arena.End.String()
		res.Throws, res.Catches, res.Splits = arena.Throws, arena.Catches, arena.Splits
	}
	return res
}

// SaveResults stores res as the last round and updates the best score. It
// sets res.NewBest when the round beat the stored best.
func SaveResults(res *SavedResults) error {
	if store == nil {
		return nil
	}
	if res.Result.Score > LoadBestScore() {
		res.NewBest = true
		data, err := json.Marshal(res.Result.Score)
		if err != nil {
			return err
		}
		if err := store.SaveItem(cfg.Persistence.BestKey, data); err != nil {
			log.Printf("Warning: Could not save best score: %v", err)
			return err
		}
	}

	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	if err := store.SaveItem(cfg.Persistence.ResultsKey, data); err != nil {
		log.Printf("Warning: Could not save results: %v", err)
		return err
	}
	return nil
}
