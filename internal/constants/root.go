package constants

// WorkletKind distinguishes the deadline-driven item types the planner accepts
type WorkletKind string

// WeightUnit is the unit label attached to subtask weights
type WeightUnit string

const (
	AppName            = "studypace"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/studypace/studypace.db"
	Version            = "v0.3.0"

	// DefaultDayEffort is the raw effort assigned to a freshly generated work day
	DefaultDayEffort = 100.0

	// PercentTolerance is the floating tolerance used when checking that a
	// workload distribution sums to 100
	PercentTolerance = 1e-6

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "studypace-"
	BackupFileSuffix = ".db"

	// RedistributedTag prefixes the title of a day whose share was folded
	// into the remaining future days
	RedistributedTag = "[Redistributed]"

	// Worklet Kind constants
	WorkletAssignment WorkletKind = "assignment"
	WorkletExam       WorkletKind = "exam"

	// Weight Unit constants
	UnitPages   WeightUnit = "pages"
	UnitMinutes WeightUnit = "minutes"
	UnitUnits   WeightUnit = "units"
)
