package config

import "os"

type Config struct {
	Port     string
	MongoURI string
	DBName   string
}

// Load reads settings from the environment. PORT defaults to 5000 and
// DB_NAME to eduManage, matching the original deployment.
func Load() Config {
	cfg := Config{
		Port:     os.Getenv("PORT"),
		MongoURI: os.Getenv("MONGO_URI"),
		DBName:   os.Getenv("DB_NAME"),
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.DBName == "" {
		cfg.DBName = "eduManage"
	}
	return cfg
}
