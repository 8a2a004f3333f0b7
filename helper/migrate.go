package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"slotbook/config"
	"slotbook/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var errUnknownAction = errors.New("unknown migration action")

// connectionString points at the write database; migrations never run against a replica.
func connectionString(config *config.Config) string {
	dsn := postgres.WriteEndpoint(config).DSN()

	if config.DB.Postgres.MigrationTable != "" {
		dsn += "&x-migrations-table=" + config.DB.Postgres.MigrationTable
	}

	return dsn
}

func Runner(config *config.Config, action string) error {
	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	var verb string

	switch action {
	case ActionUp:
		err, verb = mig.Up(), "applied"
	case ActionStepUp:
		err, verb = mig.Steps(1), "applied"
	case ActionDown:
		err, verb = mig.Steps(-1), "rolled back"
	case ActionDrop:
		err, verb = mig.Down(), "rolled back"
	default:
		return fmt.Errorf("%w: %q", errUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	log.Info().Str("action", action).Msgf("Database migrations %s successfully", verb)

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
