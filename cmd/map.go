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

	"github.com/spf13/cobra"
)

// MapCmd represents the map command
var MapCmd = &cobra.Command{
	Use:   "map",
	Short: "Build the mapping between the two meshes and write the map log",
	Run: func(cmd *cobra.Command, args []string) {
		lt := newLoadTransfer(cmd)
		exitOnError(lt.BuildMapping())
		fmt.Printf("%s\n", lt.Mapping)
	},
}

func init() {
	rootCmd.AddCommand(MapCmd)
	MapCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the component and load cases")
}
