package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Leave     LeaveConfig     `yaml:"leave"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"             env:"PORT"                    env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig selects the gorm dialector. Driver "sqlite" reads
// SQLitePath and ignores the Postgres fields.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"            env:"DB_DRIVER"            env-default:"postgres"`
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"`
	Name            string        `yaml:"name"              env:"DB_NAME"              env-default:"leave_management"`
	Port            string        `yaml:"port"              env:"DB_PORT"              env-default:"5432"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"`
	SQLitePath      string        `yaml:"sqlite_path"       env:"DB_SQLITE_PATH"       env-default:"leave.db"`
	MaxRetries      int           `yaml:"max_retries"       env:"DB_MAX_RETRIES"       env-default:"5"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"25"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"10"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"1h"`
}

type RedisConfig struct {
	Addr       string `yaml:"addr"        env:"REDIS_ADDR"`
	MaxRetries int    `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"5"`
}

type KafkaConfig struct {
	Broker     string `yaml:"broker"      env:"KAFKA_BROKER"`
	GroupID    string `yaml:"group_id"    env:"KAFKA_GROUP_ID"    env-default:"leave-management-allocations"`
	MaxRetries int    `yaml:"max_retries" env:"KAFKA_MAX_RETRIES" env-default:"5"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}

type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second" env:"RATE_LIMIT_PER_SECOND" env-default:"10"`
	Burst     int     `yaml:"burst"      env:"RATE_LIMIT_BURST"      env-default:"20"`
}

// LeaveConfig holds the role names the Identity Directory uses and the
// outbox worker cadence.
type LeaveConfig struct {
	EmployeeRole       string        `yaml:"employee_role"        env:"LEAVE_EMPLOYEE_ROLE"        env-default:"Employee"`
	AdminRole          string        `yaml:"admin_role"           env:"LEAVE_ADMIN_ROLE"           env-default:"Administrator"`
	OutboxPollInterval time.Duration `yaml:"outbox_poll_interval" env:"LEAVE_OUTBOX_POLL_INTERVAL" env-default:"3s"`
	OutboxBatchSize    int           `yaml:"outbox_batch_size"    env:"LEAVE_OUTBOX_BATCH_SIZE"    env-default:"50"`
}
