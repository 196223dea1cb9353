package progress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory
const AppName = "vr_range"

const profileObject = "profiles"

// ErrEmptyName rejects profiles without a storage key
var ErrEmptyName = errors.New("profile name is empty")

// Backend is the object-property storage a Store persists into
// *gdata.Manager satisfies it
type Backend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// Store loads and saves profiles as YAML documents
// A nil backend keeps profiles in memory only
type Store struct {
	backend Backend
}

// NewStore wraps a backend; nil runs in memory-only mode
func NewStore(b Backend) *Store {
	return &Store{backend: b}
}

// OpenStore opens the platform data directory through gdata
func OpenStore(appName string) (*Store, error) {
	if appName == "" {
		appName = AppName
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open profile store: %w", err)
	}
	return NewStore(m), nil
}

// Persistent reports whether saves reach a backend
func (s *Store) Persistent() bool {
	return s.backend != nil
}

// Load returns the named profile, or a fresh one when none is stored
func (s *Store) Load(name string) (*Profile, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if s.backend == nil || !s.backend.ObjectPropExists(profileObject, name) {
		return NewProfile(name), nil
	}
	data, err := s.backend.LoadObjectProp(profileObject, name)
	if err != nil {
		return NewProfile(name), fmt.Errorf("load profile %s: %w", name, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return NewProfile(name), fmt.Errorf("unmarshal profile %s: %w", name, err)
	}
	p.Name = name
	p.ensureMaps()
	return &p, nil
}

// Save writes the profile under its name
func (s *Store) Save(p *Profile) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if s.backend == nil {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", p.Name, err)
	}
	if err := s.backend.SaveObjectProp(profileObject, p.Name, data); err != nil {
		return fmt.Errorf("save profile %s: %w", p.Name, err)
	}
	return nil
}

// MemoryBackend is an in-process Backend
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryBackend creates an empty in-process backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func memKey(objectKey, propKey string) string {
	return objectKey + "/" + propKey
}

func (m *MemoryBackend) ObjectPropExists(objectKey, propKey string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[memKey(objectKey, propKey)]
	return ok
}

func (m *MemoryBackend) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[memKey(objectKey, propKey)]
	if !ok {
		return nil, fmt.Errorf("%s: not found", memKey(objectKey, propKey))
	}
	return append([]byte(nil), d...), nil
}

func (m *MemoryBackend) SaveObjectProp(objectKey, propKey string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[memKey(objectKey, propKey)] = append([]byte(nil), data...)
	return nil
}
