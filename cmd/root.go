/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "loadmap",
	Short: "Transfers surface pressure loads between non-matching meshes",
	Long: `Maps pressures computed on an aerodynamic surface mesh onto the panels of a
structural mesh, writes the panel forces and integrates the non-dimensional force and
moment coefficients in a reference frame.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.loadmap.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print progress and mapping statistics")
	rootCmd.PersistentFlags().StringP("resultsDir", "R", "results", "directory receiving the output files")
	rootCmd.PersistentFlags().String("profile", "", "profile the run: cpu or mem")
	for _, name := range []string{"verbose", "resultsDir", "profile"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".loadmap")
	}
	viper.SetEnvPrefix("loadmap")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// startProfile begins the profile selected with --profile, the returned func stops it
func startProfile() (stop func(), err error) {
	stop = func() {}
	switch mode := viper.GetString("profile"); mode {
	case "":
	case "cpu":
		stop = profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop
	case "mem":
		stop = profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop
	default:
		err = fmt.Errorf("unknown profile mode [%s], use cpu or mem", mode)
	}
	return
}
