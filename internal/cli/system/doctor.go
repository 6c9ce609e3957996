package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/kendallross/studypace/internal/backup"
	"github.com/kendallross/studypace/internal/cli"
	"github.com/kendallross/studypace/internal/constants"
	"github.com/kendallross/studypace/internal/keyring"
	"github.com/kendallross/studypace/internal/storage"
	"github.com/kendallross/studypace/internal/storage/sqlite"
	"github.com/kendallross/studypace/internal/utils"
	"github.com/kendallross/studypace/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Settings timezone valid (only if DB is reachable)
	if dbReachable {
		if err := checkTimezone(ctx); err != nil {
			fmt.Printf("❌ Timezone setting: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timezone setting: OK\n")
		}
	} else {
		fmt.Printf("⊘ Timezone setting: SKIPPED (database not reachable)\n")
	}

	// Check 3: Worklet validation (only if DB is reachable)
	if dbReachable {
		if err := checkWorklets(ctx); err != nil {
			fmt.Printf("❌ Worklet validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Worklet validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Worklet validation: SKIPPED (database not reachable)\n")
	}

	// Check 4: Plan invariants (only if DB is reachable)
	if dbReachable {
		if err := checkPlanInvariants(ctx); err != nil {
			fmt.Printf("❌ Plan invariants: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Plan invariants: OK\n")
		}
	} else {
		fmt.Printf("⊘ Plan invariants: SKIPPED (database not reachable)\n")
	}

	// Check 5: Backups present (warning only, SQLite backend only)
	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		fmt.Printf("⊘ Backups present: SKIPPED (postgres backend)\n")
	} else if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 6: Clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	// Check 7: Keyring availability (warning only)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   keyring unavailable; postgres credentials must be passed via --config\n")
	}

	// Check 8: Concurrent instances (warning only)
	if n, err := countRunningInstances(); err != nil {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   failed to scan processes: %v\n", err)
	} else if n > 1 {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   %d studypace processes running; concurrent writes can clobber each other\n", n)
	} else {
		fmt.Printf("✓ Concurrent instances: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkTimezone(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q", settings.Timezone)
	}
	return nil
}

func checkWorklets(ctx *cli.Context) error {
	worklets, err := ctx.Store.GetAllWorklets()
	if err != nil {
		return fmt.Errorf("failed to get worklets: %w", err)
	}

	seen := make(map[string]bool)
	for _, w := range worklets {
		if seen[w.ID] {
			return fmt.Errorf("duplicate worklet ID found: %s", w.ID)
		}
		seen[w.ID] = true

		if result := validation.ValidateWorklet(w); result.HasIssues() {
			return fmt.Errorf("worklet %s (%s):\n%s", w.ID, w.Name, result.FormatReport())
		}
	}
	return nil
}

// checkPlanInvariants verifies that each planned worklet's workload
// percentages sum to 100 and that dates parse.
func checkPlanInvariants(ctx *cli.Context) error {
	worklets, err := ctx.Store.GetAllWorklets()
	if err != nil {
		return fmt.Errorf("failed to get worklets: %w", err)
	}

	for _, w := range worklets {
		if len(w.DailyWorkload) == 0 {
			continue
		}
		sum := 0.0
		for _, dw := range w.DailyWorkload {
			if _, err := utils.ParseDateKey(dw.Date, time.UTC); err != nil {
				return fmt.Errorf("worklet %s has invalid workload date %q", w.ID, dw.Date)
			}
			sum += dw.Percentage
		}
		if sum < 100-constants.PercentTolerance || sum > 100+constants.PercentTolerance {
			return fmt.Errorf("worklet %s workload sums to %.6f, expected 100", w.ID, sum)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'studypace backup create'")
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func countRunningInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	self := os.Getpid()
	count := 1
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			count++
		}
	}
	return count, nil
}
