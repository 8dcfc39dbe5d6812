package config

import (
	"fmt"
	"log"

	"github.com/cardtable-online/server/consts"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var Conf *Config

type Config struct {
	AppName        string  `mapstructure:"appName"`
	Addr           string  `mapstructure:"addr"`
	WsPath         string  `mapstructure:"wsPath"`
	MaxConnections int     `mapstructure:"maxConnections"`
	MaxSeats       int     `mapstructure:"maxSeats"`
	Log            LogConf `mapstructure:"log"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// InitConfig loads the yml config file and keeps watching it for changes.
func InitConfig(confFile string) {
	Conf = new(Config)
	v := viper.New()
	v.SetConfigFile(confFile)
	v.SetDefault("appName", "cardtable")
	v.SetDefault("addr", ":5555")
	v.SetDefault("wsPath", "/ws")
	v.SetDefault("maxConnections", consts.MaxConnections)
	v.SetDefault("maxSeats", consts.MaxSeats)
	v.SetDefault("log.level", "INFO")
	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		log.Println("config file changed")
		err := v.Unmarshal(&Conf)
		if err != nil {
			panic(fmt.Errorf("unmarshal changed config data, err:%v \n", err))
		}
	})
	err := v.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("read config file err:%v \n", err))
	}
	err = v.Unmarshal(&Conf)
	if err != nil {
		panic(fmt.Errorf("unmarshal config data, err:%v \n", err))
	}
}
