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
	"io"
	"io/ioutil"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/lsmesh/InputParameters"
	"github.com/notargets/lsmesh/Mesh2D"
	"github.com/notargets/lsmesh/logger"
	"github.com/notargets/lsmesh/utils"
)

type MeshRun struct {
	InputFile  string
	Queries    []string
	Dump       bool
	Graph      bool
	PlotPoints bool
	Profile    bool
	Delay      time.Duration
}

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Build a fixed grid mesh and locate points in it",
	Long: `
Builds a W x H grid of unit square elements, optionally periodic, and reports the
element and nearest node of each query point.

lsmesh mesh -W 4 -H 3 -q 0.3,0.3 -q 2.7,1.5 --dump
lsmesh mesh -I mesh.yaml --graph --plotPoints -d 5000`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			mr = &MeshRun{}
			ip *InputParameters.MeshParameters
		)
		mr.InputFile, _ = cmd.Flags().GetString("inputParametersFile")
		mr.Queries, _ = cmd.Flags().GetStringArray("query")
		mr.Dump, _ = cmd.Flags().GetBool("dump")
		mr.Graph, _ = cmd.Flags().GetBool("graph")
		mr.PlotPoints, _ = cmd.Flags().GetBool("plotPoints")
		mr.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		mr.Delay = time.Duration(dr) * time.Millisecond
		if ip, err = processInput(mr); err != nil {
			return
		}
		if mr.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
		}
		ip.Print()
		return RunMesh(mr, ip, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().IntP("width", "W", 10, "number of elements in x")
	MeshCmd.Flags().IntP("height", "H", 10, "number of elements in y")
	MeshCmd.Flags().BoolP("periodic", "p", false, "wrap node neighbours around the domain")
	MeshCmd.Flags().IntP("threads", "t", 0, "goroutines used for batch queries, 0 uses every CPU")
	MeshCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for mesh parameters, overrides the flags above")
	MeshCmd.Flags().StringArrayP("query", "q", nil, "point to locate as x,y, may be repeated")
	MeshCmd.Flags().Bool("dump", false, "write every node and element to stdout")
	MeshCmd.Flags().BoolP("graph", "g", false, "display the mesh")
	MeshCmd.Flags().Bool("plotPoints", false, "mark the Gauss points on the graph")
	MeshCmd.Flags().IntP("delay", "d", 3000, "milliseconds the graph is held on screen")
	MeshCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
	for _, name := range []string{"width", "height", "periodic", "threads"} {
		_ = viper.BindPFlag(name, MeshCmd.Flags().Lookup(name))
	}
}

func processInput(mr *MeshRun) (ip *InputParameters.MeshParameters, err error) {
	ip = &InputParameters.MeshParameters{
		Title:    "lsmesh",
		Width:    viper.GetInt("width"),
		Height:   viper.GetInt("height"),
		Periodic: viper.GetBool("periodic"),
		Threads:  viper.GetInt("threads"),
	}
	if len(mr.InputFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(mr.InputFile); err != nil {
			err = fmt.Errorf("unable to read input parameters: %w", err)
			return
		}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("unable to parse %s: %w", mr.InputFile, err)
			return
		}
	}
	for _, q := range mr.Queries {
		var pt [2]float64
		if pt, err = parseQuery(q); err != nil {
			return
		}
		ip.Queries = append(ip.Queries, pt)
	}
	if err = ip.Validate(); err != nil {
		err = fmt.Errorf("invalid mesh parameters: %w", err)
	}
	return
}

func parseQuery(q string) (pt [2]float64, err error) {
	fields := strings.Split(q, ",")
	if len(fields) != 2 {
		err = fmt.Errorf("query %q must have the form x,y", q)
		return
	}
	for i, f := range fields {
		if pt[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			err = fmt.Errorf("query %q: %w", q, err)
			return
		}
	}
	return
}

// RunMesh builds the mesh and writes query results, and the dump when asked, to w
func RunMesh(mr *MeshRun, ip *InputParameters.MeshParameters, w io.Writer) (err error) {
	var (
		start = time.Now()
		m     = Mesh2D.NewMesh(ip.Width, ip.Height, ip.Periodic)
	)
	logger.Log.Info("mesh built",
		zap.Int("width", m.Width()),
		zap.Int("height", m.Height()),
		zap.Bool("periodic", m.IsPeriodic()),
		zap.Int("nNodes", m.NumNodes()),
		zap.Int("nElements", m.NumElements()),
		zap.Duration("elapsed", time.Since(start)),
	)
	logger.Log.Debug("memory", zap.String("usage", utils.GetMemUsage()))
	m.Print()
	if nq := len(ip.Queries); nq != 0 {
		var (
			X = make([]float64, nq)
			Y = make([]float64, nq)
		)
		for i, q := range ip.Queries {
			X[i], Y[i] = q[0], q[1]
		}
		start = time.Now()
		elements := m.LocateElements(X, Y, ip.Threads)
		nodes := m.LocateNearestNodes(X, Y, ip.Threads)
		logger.Log.Info("queries located",
			zap.Int("count", nq),
			zap.Duration("elapsed", time.Since(start)),
		)
		for i := range X {
			fmt.Fprintf(w, "[%g, %g] -> element %d, nearest node %d\n",
				X[i], Y[i], elements[i], nodes[i])
		}
	}
	if mr.Dump {
		if err = m.Dump(w); err != nil {
			return fmt.Errorf("unable to dump mesh: %w", err)
		}
	}
	if mr.Graph {
		Mesh2D.PlotMesh(m, mr.PlotPoints, mr.Delay)
	}
	return
}
