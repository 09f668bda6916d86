package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/constellation/internal/field"
)

const (
	preferencesFile = "preferences.json"
	metadataFile    = "metadata.json"
	particlesFile   = "particles.csv"
)

// Store keeps the theme preference and exported field snapshots under one
// data directory.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type Preferences struct {
	Theme     string    `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoadPreferences returns zero preferences when none were saved yet.
func (s *Store) LoadPreferences() (Preferences, error) {
	var prefs Preferences
	data, err := os.ReadFile(filepath.Join(s.baseDir, preferencesFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, err
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing %s: %w", preferencesFile, err)
	}
	return prefs, nil
}

func (s *Store) SavePreferences(prefs Preferences) error {
	if err := s.Init(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.baseDir, preferencesFile), data, 0644)
}

// LoadTheme and SaveTheme make the store usable as a theme.Store.
func (s *Store) LoadTheme() (string, error) {
	prefs, err := s.LoadPreferences()
	return prefs.Theme, err
}

func (s *Store) SaveTheme(name string) error {
	prefs, err := s.LoadPreferences()
	if err != nil {
		prefs = Preferences{}
	}
	prefs.Theme = name
	prefs.UpdatedAt = time.Now()
	return s.SavePreferences(prefs)
}

type SnapshotMetadata struct {
	ID        string       `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Frames    uint64       `json:"frames"`
	Seed      int64        `json:"seed"`
	Theme     string       `json:"theme"`
	Count     int          `json:"count"`
	Params    field.Params `json:"params"`
}

// ParticleRecord is one CSV row of a snapshot.
type ParticleRecord struct {
	Index   int     `csv:"index"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	VX      float64 `csv:"vx"`
	VY      float64 `csv:"vy"`
	Radius  float64 `csv:"radius"`
	Opacity float64 `csv:"opacity"`
}

func toRecords(ps []field.Particle) []ParticleRecord {
	out := make([]ParticleRecord, len(ps))
	for i, p := range ps {
		out[i] = ParticleRecord{Index: i, X: p.X, Y: p.Y, VX: p.VX, VY: p.VY, Radius: p.Radius, Opacity: p.Opacity}
	}
	return out
}

// SaveSnapshot writes metadata.json and particles.csv into a new snapshot
// directory and returns its id.
func (s *Store) SaveSnapshot(meta SnapshotMetadata, particles []field.Particle) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("snapshot_%d", meta.Timestamp.UnixNano())
	}
	meta.Count = len(particles)

	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, particlesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := gocsv.MarshalFile(toRecords(particles), csvFile); err != nil {
		return "", fmt.Errorf("writing particles: %w", err)
	}
	return meta.ID, nil
}

func (s *Store) ListSnapshots() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotMetadata{}, nil
		}
		return nil, err
	}

	snaps := make([]SnapshotMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.LoadSnapshot(entry.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}
	return snaps, nil
}

func (s *Store) LoadSnapshot(id string) (*SnapshotMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}
	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadParticles(id string) ([]field.Particle, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, particlesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []ParticleRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("reading particles: %w", err)
	}
	out := make([]field.Particle, len(records))
	for i, r := range records {
		out[i] = field.Particle{X: r.X, Y: r.Y, VX: r.VX, VY: r.VY, Radius: r.Radius, Opacity: r.Opacity}
	}
	return out, nil
}
