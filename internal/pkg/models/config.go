package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Bcrypt   BcryptConfig
	Stripe   StripeConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int
	IdleConns      int
	MigrationsPath string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	AccessSecret      string
	AccessExpiration  int // in minutes
	RefreshSecret     string
	RefreshExpiration int // in minutes
	Issuer            string
}

// BcryptConfig contains credential hashing configuration
type BcryptConfig struct {
	Cost int
}

// StripeConfig contains payment gateway configuration
type StripeConfig struct {
	SecretKey         string
	BaseURL           string
	Currency          string
	TimeoutSeconds    int
	TestPaymentMethod string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
