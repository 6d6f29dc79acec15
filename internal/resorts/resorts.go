// Package resorts exposes the bundled ski resort catalogue.
package resorts

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/robalobadob/wordscramble/assets"
)

// Resort is one entry of assets/resorts.json.
type Resort struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	ImageCredit string   `json:"imageCredit"`
	Price       int      `json:"price"`     // 1-3
	Size        int      `json:"size"`      // 1-3
	SnowDepth   int      `json:"snowDepth"` // cm
	Elevation   int      `json:"elevation"` // m
	Runs        int      `json:"runs"`
	Facilities  []string `json:"facilities"`
}

var (
	loadOnce sync.Once
	all      []Resort
	loadErr  error
)

// All decodes the bundled catalogue once and returns it.
func All() ([]Resort, error) {
	loadOnce.Do(func() {
		b, err := assets.FS.ReadFile("resorts.json")
		if err != nil {
			loadErr = fmt.Errorf("read resorts.json: %w", err)
			return
		}
		all, loadErr = Decode(b)
	})
	return all, loadErr
}

// Decode parses a JSON array of resorts.
func Decode(b []byte) ([]Resort, error) {
	var out []Resort
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode resorts: %w", err)
	}
	return out, nil
}

// Example returns the first resort in the catalogue.
func Example() (Resort, error) {
	list, err := All()
	if err != nil {
		return Resort{}, err
	}
	if len(list) == 0 {
		return Resort{}, errors.New("resorts: catalogue is empty")
	}
	return list[0], nil
}
