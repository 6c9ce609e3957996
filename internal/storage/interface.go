package storage

import "github.com/kendallross/studypace/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Worklets. SaveWorklet replaces the whole record: planning is an atomic
	// read-modify-write against the worklet, so partial updates are never
	// written back.
	AddWorklet(models.Worklet) error
	GetWorklet(id string) (models.Worklet, error)
	GetAllWorklets() ([]models.Worklet, error)
	GetAllWorkletsIncludingDeleted() ([]models.Worklet, error)
	SaveWorklet(models.Worklet) error
	DeleteWorklet(id string) error
	RestoreWorklet(id string) error

	// Utils
	GetConfigPath() string
}
