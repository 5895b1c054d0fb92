package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 PAGEANT_PORT、PAGEANT_DATABASE_HOST
const EnvPrefix = "PAGEANT"

var (
	cfg  = Default()
	mu   sync.RWMutex
	once sync.Once
)

// Default 返回带默认值的配置
func Default() Config {
	return Config{
		Host:   "0.0.0.0",
		Port:   "8080",
		Prefix: "api",
		Mode:   ModeDebug,
		Database: Database{
			Driver: "mysql",
			Host:   "127.0.0.1",
			Port:   "3306",
			DBName: "pageant",
		},
		Log: Log{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
		Metrics: Metrics{
			Enable: true,
			Path:   "/metrics",
		},
	}
}

// Init 依次加载 .env、config.yaml 与环境变量，后者覆盖前者
func Init() {
	once.Do(func() {
		c, err := Load()
		if err != nil {
			panic(err)
		}
		Set(c)
	})
}

// Load 构建配置但不写入全局
func Load() (Config, error) {
	// .env 文件可选
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("加载 .env 失败: %w", err)
	}

	c := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return Config{}, fmt.Errorf("解析环境变量失败: %w", err)
	}

	if err := validator.New().Struct(c); err != nil {
		return Config{}, fmt.Errorf("配置校验失败: %w", err)
	}
	return c, nil
}

// Get 获取全局配置
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	c := cfg
	return &c
}

// Set 替换全局配置，测试中也会用到
func Set(c Config) {
	mu.Lock()
	cfg = c
	mu.Unlock()
}
