package config

import (
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/spf13/viper"
)

// Env is structure containing env variables
type Env struct {
	DSN                      string        `mapstructure:"DATABASE_URL" validate:"required"`
	RedisOTPURL              string        `mapstructure:"REDIS_OTP_URL" validate:"required,uri"`
	RedisRatelimiterUsername string        `mapstructure:"REDIS_RATELIMITER_USERNAME"`
	RedisRatelimiterPassword string        `mapstructure:"REDIS_RATELIMITER_PASSWORD"`
	RedisRatelimiterHost     string        `mapstructure:"REDIS_RATELIMITER_HOST" validate:"required"`
	ResendAPIKey             string        `mapstructure:"RESEND_API_KEY" validate:"required"`
	JWTSecret                string        `mapstructure:"JWT_SECRET" validate:"required,min=6"`
	DevEnv                   string        `mapstructure:"DEV_ENV" validate:"required,oneof=DEV PROD TEST"`
	Port                     string        `mapstructure:"PORT" validate:"required,numeric"`
	FrontendHostname         string        `mapstructure:"FRONTEND_HOSTNAME" validate:"required,hostname"`
	JWTExpires               time.Duration `mapstructure:"JWT_EXPIRES_IN" validate:"required"`
	OTPExpires               time.Duration `mapstructure:"OTP_EXPIRES_IN" validate:"required"`
	RedisRatelimiterPort     int           `mapstructure:"REDIS_RATELIMITER_PORT" validate:"required,number"`
}

// Load is a function that is used to laod the env variables from the file and the enviroment
func (e *Env) Load() {
	viper.AddConfigPath(".")
	viper.SetConfigFile(".env")
	viper.SetDefault("JWT_EXPIRES_IN", 24*time.Hour)
	viper.SetDefault("OTP_EXPIRES_IN", 10*time.Minute)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		logger.Error(err)
	}

	err = viper.Unmarshal(&e)
	if err != nil {
		logger.Errorf(err)
	}

	logger.Validatef(e)
}
