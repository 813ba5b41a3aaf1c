package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Mail     MailConfig     `mapstructure:"mail"`
	Account  AccountConfig  `mapstructure:"account"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

// RedisConfig holds cache-related configuration
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

// MailConfig holds the outbound mail API configuration
type MailConfig struct {
	URL         string `mapstructure:"url"`
	APIKey      string `mapstructure:"api_key"`
	FromAddress string `mapstructure:"from"`
	BaseLinkURL string `mapstructure:"base_link_url"`
}

// PasswordPolicy holds the minimum-strength requirements for passwords
type PasswordPolicy struct {
	MinLength      int  `mapstructure:"minLength"`
	RequireUpper   bool `mapstructure:"requireUpper"`
	RequireLower   bool `mapstructure:"requireLower"`
	RequireDigit   bool `mapstructure:"requireDigit"`
	RequireSpecial bool `mapstructure:"requireSpecial"`
}

// AccountConfig holds the account lifecycle policy knobs
type AccountConfig struct {
	Password         PasswordPolicy `mapstructure:"password"`
	LockoutThreshold int            `mapstructure:"lockoutThreshold"`
	LockoutDuration  time.Duration  `mapstructure:"lockoutDuration"`
	VerifyTokenTTL   time.Duration  `mapstructure:"verifyTokenTTL"`
	ResetTokenTTL    time.Duration  `mapstructure:"resetTokenTTL"`
	WelcomeBonus     string         `mapstructure:"welcomeBonus"`
	MinimumAge       int            `mapstructure:"minimumAge"`
}

// WelcomeBonusAmount parses the configured welcome bonus
func (c AccountConfig) WelcomeBonusAmount() decimal.Decimal {
	amount, err := decimal.NewFromString(c.WelcomeBonus)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("SAFECASINO_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
