package config

import (
	"os"
	"path"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// DBConfig selects the storage backend. Type "memory" runs the seeded
// in-process store; "postgres" backs the same contract onto a database.
type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "lauremed",
		Location: "Asia/Kolkata",
		Workdir:  "/var/lauremed",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 5000,
	},
	Database: DBConfig{
		Type:     "memory",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "lauremed",
		User:     "postgres",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/lauremed/lauremed.log",
	},
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func setEnvValue(name string, f func(v string)) {
	if v := os.Getenv(name); v != "" {
		f(v)
	}
}

// LoadConfig reads the YAML config file if one exists, falling back to
// defaults, then applies LAUREMED_* environment overrides. A .env file in
// the working directory is honored before the environment is read.
func LoadConfig(cfile string) *AppConfig {
	_ = godotenv.Load()

	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			cfg = new(AppConfig)
			if err := yaml.Unmarshal(data, cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("LAUREMED_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("LAUREMED_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("LAUREMED_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("LAUREMED_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("LAUREMED_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("LAUREMED_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("LAUREMED_DB_PORT", func(v string) { cfg.Database.Port = cast.ToInt(v) })
	setEnvValue("LAUREMED_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("LAUREMED_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("LAUREMED_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("LAUREMED_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	return cfg
}
