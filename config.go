package main

import "time"

type Config struct {
	Port          string        `env:"PORT" env-default:"3000"`
	BaseURL       string        `env:"BASE_URL" env-default:"http://localhost:3000"`
	DbPath        string        `env:"DBPATH"`
	BlobPath      string        `env:"BLOBPATH"`
	JwtSecret     string        `env:"JWT_SECRET" env-required:"true"`
	PresignSecret string        `env:"PRESIGN_SECRET" env-required:"true"`
	PresignExpiry time.Duration `env:"PRESIGN_EXPIRY" env-default:"1h"`
	SmtpServer    string        `env:"SMTP_SERVER"`
	SmtpPort      int           `env:"SMTP_PORT" env-default:"587"`
	SmtpUser      string        `env:"SMTP_USER"`
	SmtpPassword  string        `env:"SMTP_PASSWORD"`
	Verbose       bool          `env:"VERBOSE" env-default:"false"`
}
