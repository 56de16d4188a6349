package database

// Config holds configuration for the world database connection.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"acore"`
	// Password is the database password.
	Password string `mapstructure:"password" default:"acore"`
	// Name is the world database name. For the sqlite driver it is the file
	// path, or ":memory:".
	Name string `mapstructure:"name" default:"acore_world"`
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// TimeoutSeconds bounds connection setup and socket reads/writes.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
