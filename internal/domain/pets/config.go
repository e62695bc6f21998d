package pets

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Formato del archivo PETS_FILE:
//
//	pets:
//	  - id: rex
//	    name: Rex
//	    type: dog
//	    log_categories: [grooming]
//	    medications:
//	      - id: apoquel
//	        name: Apoquel
//	        dosage: "5.4"
//	        unit: mg
//	        frequency: daily
//	        times: ["08:00"]
//	        start_date: 2024-01-01
type fileConfig struct {
	Pets []petEntry `yaml:"pets"`
}

type petEntry struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name"`
	Type          string            `yaml:"type"`
	LogCategories []string          `yaml:"log_categories"`
	Medications   []medicationEntry `yaml:"medications"`
}

type medicationEntry struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Dosage    string   `yaml:"dosage"`
	Unit      string   `yaml:"unit"`
	Frequency string   `yaml:"frequency"`
	Times     []string `yaml:"times"`
	StartDate string   `yaml:"start_date"`
	Active    *bool    `yaml:"active"`
	Notes     string   `yaml:"notes"`
}

// ParseConfig convierte el YAML en inputs para Upsert.
func ParseConfig(b []byte) ([]CreateInput, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse pets config: %w", err)
	}

	out := make([]CreateInput, 0, len(cfg.Pets))
	for i, p := range cfg.Pets {
		in := CreateInput{
			ID:            p.ID,
			Name:          p.Name,
			Type:          p.Type,
			LogCategories: p.LogCategories,
		}
		for _, m := range p.Medications {
			mi := MedicationInput{
				ID:        m.ID,
				Name:      m.Name,
				Dosage:    m.Dosage,
				Unit:      m.Unit,
				Frequency: m.Frequency,
				Times:     m.Times,
				Active:    m.Active,
				Notes:     m.Notes,
			}
			if s := strings.TrimSpace(m.StartDate); s != "" {
				t, err := time.Parse("2006-01-02", s)
				if err != nil {
					return nil, fmt.Errorf("pets[%d] medication %q: start_date must be YYYY-MM-DD", i, m.Name)
				}
				mi.StartDate = &t
			}
			in.Medications = append(in.Medications, mi)
		}
		out = append(out, in)
	}
	return out, nil
}

func LoadFile(path string) ([]CreateInput, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pets config: %w", err)
	}
	return ParseConfig(b)
}

// Seed aplica Upsert a cada entrada; se detiene en el primer error.
func (s *Service) Seed(ctx context.Context, inputs []CreateInput) ([]Pet, error) {
	out := make([]Pet, 0, len(inputs))
	for _, in := range inputs {
		p, err := s.Upsert(ctx, in)
		if err != nil {
			return out, fmt.Errorf("seed pet %q: %w", in.Name, err)
		}
		out = append(out, p)
	}
	return out, nil
}
