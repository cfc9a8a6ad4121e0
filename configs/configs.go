package configs

import "github.com/spf13/viper"

type Conf struct {
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBHost        string `mapstructure:"DB_HOST"`
	DBPort        string `mapstructure:"DB_PORT"`
	DBUser        string `mapstructure:"DB_USER"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBName        string `mapstructure:"DB_NAME"`
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	WebServerPort string `mapstructure:"WEB_SERVER_PORT"`
	AMQPort       string `mapstructure:"AMQ_PORT"`
	OTELCollector string `mapstructure:"OTEL_COLLECTOR_ADDR"`
	ServiceEnv    string `mapstructure:"SERVICE_ENV"`
	IngestQueue   string `mapstructure:"INGEST_QUEUE"`
	ImportSheet   string `mapstructure:"IMPORT_SHEET"`
	ImportWorkers int    `mapstructure:"IMPORT_WORKERS"`
}

func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("INGEST_QUEUE", "sites.position_updated")
	viper.SetDefault("IMPORT_SHEET", "Sites")
	viper.SetDefault("IMPORT_WORKERS", 10)
	viper.SetDefault("SERVICE_ENV", "development")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
