package migration

// CollectionName is the collection the job migrates.
const CollectionName = "customers"

// DefaultPassword is assigned to every customer without a password.
// It is a shared bootstrap secret: migrated accounts must be forced to reset it.
const DefaultPassword = "password123"

// DefaultHashCost is the bcrypt cost used for the default password.
const DefaultHashCost = 10

// Config holds migration settings loaded from the environment.
type Config struct {
	DefaultPassword string `env:"MIGRATION_DEFAULT_PASSWORD" envDefault:"password123"`
	HashCost        int    `env:"MIGRATION_HASH_COST" envDefault:"10"`
	// ResumeAfter is the hex ObjectID of the last customer processed by an earlier run.
	ResumeAfter string `env:"MIGRATION_RESUME_AFTER"`
}
