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
	"github.com/spf13/cobra"
)

// IntegrateCmd represents the integrate command
var IntegrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Integrate every load case directly on the input mesh",
	Long: `Integrates each pressure file on the mesh it was computed on, without any
mapping, and writes integrated_<case>.txt to the results directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		lt := newLoadTransfer(cmd)
		exitOnError(profiled(func() (err error) {
			_, err = lt.Integrate()
			return
		}))
	},
}

func init() {
	rootCmd.AddCommand(IntegrateCmd)
	IntegrateCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the component and load cases")
}
