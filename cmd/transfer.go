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
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/loadmap/InputParameters"
	"github.com/notargets/loadmap/model_problems/LoadTransfer"
)

const exampleFile = `
########################################
component:
  name: wing
  input_grids: grids_cfd.txt
  input_elements: elements_cfd.txt
  output_grids: grids_fem.txt
  output_elements: elements_fem.txt
  input_mesh_type: 3     # 3 = triangles, 4 = quads
  input_press_type: 1    # 0 = nodes, 1 = element centers
  output_mesh_type: 4
  output_press_type: 1
  data_dir: wing
  plane: 0               # 0 = xy, 1 = xz
reference_frame: cs.txt
tolerance: 1.0e-10
vtk: true
files:
  - press_case1.txt
########################################
`

// TransferCmd represents the transfer command
var TransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Map every load case onto the structural mesh and integrate it",
	Long: `Reads both meshes, maps the input panel centers onto the output panels once,
then for each pressure file writes the panel forces, the integrated coefficients and
optionally a VTK file.`,
	Run: func(cmd *cobra.Command, args []string) {
		lt := newLoadTransfer(cmd)
		exitOnError(profiled(func() (err error) {
			_, err = lt.Transfer()
			return
		}))
	},
}

func init() {
	rootCmd.AddCommand(TransferCmd)
	TransferCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the component and load cases")
}

func processInput(cmd *cobra.Command) (ip *InputParameters.LoadTransferParameters) {
	var (
		err      error
		data     []byte
		fileName string
	)
	if fileName, err = cmd.Flags().GetString("inputFile"); err != nil {
		panic(err)
	}
	if len(fileName) == 0 {
		fmt.Printf("error: must supply an input file (-I, --inputFile)\n")
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(fileName); err != nil {
		exitOnError(err)
	}
	ip = &InputParameters.LoadTransferParameters{}
	if err = ip.Parse(data); err != nil {
		exitOnError(fmt.Errorf("%s: %w", fileName, err))
	}
	if err = ip.Validate(); err != nil {
		exitOnError(fmt.Errorf("%s: %w", fileName, err))
	}
	ip.BaseDir = filepath.Dir(fileName)
	if viper.GetBool("verbose") {
		ip.Print()
	}
	return
}

func newLoadTransfer(cmd *cobra.Command) (lt *LoadTransfer.LoadTransfer) {
	var err error
	ip := processInput(cmd)
	if lt, err = LoadTransfer.NewLoadTransfer(ip, viper.GetString("resultsDir"), viper.GetBool("verbose")); err != nil {
		exitOnError(err)
	}
	return
}

// profiled runs fn under the profile selected with --profile, stopping it before returning
func profiled(fn func() error) (err error) {
	var stop func()
	if stop, err = startProfile(); err != nil {
		return
	}
	err = fn()
	stop()
	return
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Printf("error: %s\n", err.Error())
	os.Exit(1)
}
