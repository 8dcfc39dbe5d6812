package main

import (
	"fmt"
	"os"

	"github.com/cardtable-online/server/config"
	"github.com/cardtable-online/server/game"
	"github.com/cardtable-online/server/logs"
	"github.com/cardtable-online/server/network"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "card table session server",
	Long:  `Real-time multiplayer card table: seats, lurkers, deals, turns.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

var configFile string

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "application.yml", "app config yml file")
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func serve() {
	config.InitConfig(configFile)
	logs.InitLog(config.Conf.AppName)

	registry := network.NewRegistry()
	g := game.New(registry, config.Conf.MaxSeats)
	var server network.Network = network.NewWebsocketServer(
		config.Conf.Addr,
		config.Conf.WsPath,
		config.Conf.MaxConnections,
		registry,
		g,
	)
	logs.Error("%v", server.Serve())
}
