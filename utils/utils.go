// Package utils contains the utility packages
package utils

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/sketchsync/backend/config"
	"github.com/sketchsync/backend/connect"
)

// CheckForMigrations is a function that checks wether the schema changes should be migrated to the database
func CheckForMigrations(c *connect.Connector, env *config.Env) {
	enableMigrations := flag.Bool("migrate", false, "Migrate the schema to the relational database")
	flag.Parse()
	if enableMigrations != nil && *enableMigrations {
		c.MigrateSchemaChanges(env)
		os.Exit(0)
	}
}

// GenerateOTPCode is a function that is used to generate a 6 digit one time code
func GenerateOTPCode() string {
	return fmt.Sprintf(
		"%d%d%d%d%d%d",
		rand.Intn(10),
		rand.Intn(10),
		rand.Intn(10),
		rand.Intn(10),
		rand.Intn(10),
		rand.Intn(10),
	)
}
