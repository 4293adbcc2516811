package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "workflow-assistant",
	Short: "Pipeline soundness checker",
	Long:  "workflow-assistant statically validates canvas pipeline graphs before they are saved, tested, or deployed.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("backend", "", "Base URL of the execution back end (enables remote checks)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
}

func initConfig() {
	viper.SetEnvPrefix("WORKFLOW_ASSISTANT")
	viper.AutomaticEnv()
}
