package array

import (
	"encoding/json"
	"fmt"

	ms "github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
)

// Settings is the declarative description of an array, decodable from JSON
// or from generic config maps.
type Settings struct {
	Wavelength float64     `json:"Wavelength"`
	NX         int         `json:"NX"`
	NY         int         `json:"NY"`
	SpacingWl  float64     `json:"SpacingWl"` // element spacing in wavelengths
	Positions  [][]float64 `json:"Positions"` // explicit (x,y,z) rows, overrides NX/NY
	Amplitudes []float64   `json:"Amplitudes"`
	Phases     []float64   `json:"Phases"`
}

// SetDefault fills a 9x9 half-wavelength planar array, the geometry the
// plotting scripts start from.
func (s *Settings) SetDefault() {
	s.Wavelength = 0.5
	s.NX = 9
	s.NY = 9
	s.SpacingWl = 0.25
}

// Set overwrites fields from a JSON string.
func (s *Settings) Set(str string) {
	if err := json.Unmarshal([]byte(str), s); err != nil {
		log.Print("Error ", err)
	}
}

// FromMap decodes settings from a generic map (viper.AllSettings and
// friends) and builds the model.
func FromMap(m map[string]interface{}) (*Model, error) {
	var s Settings
	s.SetDefault()
	if err := ms.Decode(m, &s); err != nil {
		return nil, fmt.Errorf("array: decode settings: %w", err)
	}
	return s.Build()
}

// Build materializes the model described by s. Explicit positions win over
// the planar NX/NY geometry; amplitude and phase lists, when given, must
// match the element count.
func (s Settings) Build() (*Model, error) {
	m, err := New(s.Wavelength)
	if err != nil {
		return nil, err
	}
	if len(s.Positions) > 0 {
		for _, row := range s.Positions {
			if len(row) != 3 {
				return nil, fmt.Errorf("array: position row must be (x,y,z), got %v", row)
			}
			m.AddElement(loc3D(row[0], row[1], row[2]), 1)
		}
	} else {
		if s.NX < 1 || s.NY < 1 {
			return nil, fmt.Errorf("array: grid must be at least 1x1, got %dx%d", s.NX, s.NY)
		}
		m.AddElements(PlanarXY(s.NX, s.NY, s.SpacingWl*s.Wavelength))
	}
	if len(s.Amplitudes) > 0 && len(s.Amplitudes) != m.Len() {
		return nil, fmt.Errorf("%w: %d amplitudes for %d elements",
			ErrMismatchedElementCount, len(s.Amplitudes), m.Len())
	}
	if len(s.Phases) > 0 && len(s.Phases) != m.Len() {
		return nil, fmt.Errorf("%w: %d phases for %d elements",
			ErrMismatchedElementCount, len(s.Phases), m.Len())
	}
	for i := 0; i < m.Len(); i++ {
		amp, phase := 1.0, 0.0
		if len(s.Amplitudes) > 0 {
			amp = s.Amplitudes[i]
		}
		if len(s.Phases) > 0 {
			phase = s.Phases[i]
		}
		if err := m.SetWeight(i, amp, phase); err != nil {
			return nil, err
		}
	}
	return m, nil
}
