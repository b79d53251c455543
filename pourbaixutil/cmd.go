/*
Copyright © 2024 the Pourbaix authors.
This file is part of Pourbaix.

Pourbaix is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Pourbaix is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Pourbaix.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package pourbaixutil contains the command-line interface to the
// pourbaix and speciation packages.
package pourbaixutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zabat/pourbaix"
	"github.com/zabat/pourbaix/render"
	"github.com/zabat/pourbaix/speciation"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log receives progress messages from the commands.
var Log logrus.FieldLogger = logrus.StandardLogger()

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

var options []option

func init() {
	gridFlags := []*pflag.FlagSet{diagramCmd.Flags(), sweepCmd.Flags()}

	options = []option{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Temperature",
			usage: `
              Temperature is the solution temperature in °C. It must be
              between 25 and 100 °C.`,
			shorthand:  "t",
			defaultVal: 25.0,
			flagsets:   []*pflag.FlagSet{diagramCmd.Flags(), thresholdsCmd.Flags()},
		},
		{
			name: "PZn",
			usage: `
              PZn is -log10 of the activity of dissolved zinc species. It
              must be between 0 and 8.`,
			shorthand:  "z",
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{diagramCmd.Flags(), thresholdsCmd.Flags()},
		},
		{
			name: "Approximation",
			usage: `
              Approximation specifies how free energies of reaction are
              extrapolated from 25 °C. Options are heatcapacity, vanthoff,
              weak, and reference.`,
			defaultVal: "heatcapacity",
			flagsets:   []*pflag.FlagSet{diagramCmd.Flags(), sweepCmd.Flags(), thresholdsCmd.Flags()},
		},
		{
			name: "Solid",
			usage: `
              Solid specifies the passivating zinc(II) solid. Options are
              oxide (ZnO) and epsilon (ε-Zn(OH)2).`,
			defaultVal: "oxide",
			flagsets:   []*pflag.FlagSet{diagramCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Grid.PHMin",
			usage: `
              Grid.PHMin is the lower pH limit of the diagram.`,
			defaultVal: pourbaix.DefaultGrid.PHMin,
			flagsets:   gridFlags,
		},
		{
			name: "Grid.PHMax",
			usage: `
              Grid.PHMax is the upper pH limit of the diagram.`,
			defaultVal: pourbaix.DefaultGrid.PHMax,
			flagsets:   gridFlags,
		},
		{
			name: "Grid.PHStep",
			usage: `
              Grid.PHStep is the pH spacing of the sampled boundary lines.`,
			defaultVal: pourbaix.DefaultGrid.PHStep,
			flagsets:   gridFlags,
		},
		{
			name: "Grid.EMin",
			usage: `
              Grid.EMin is the lower potential limit of the diagram
              [V vs. SHE].`,
			defaultVal: pourbaix.DefaultGrid.EMin,
			flagsets:   gridFlags,
		},
		{
			name: "Grid.EMax",
			usage: `
              Grid.EMax is the upper potential limit of the diagram
              [V vs. SHE].`,
			defaultVal: pourbaix.DefaultGrid.EMax,
			flagsets:   gridFlags,
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path of the GeoJSON file the diagram
              is written to. For the sweep command it is used as a
              template; temperature and pZn are added to the file name.`,
			shorthand:  "o",
			defaultVal: "pourbaix.geojson",
			flagsets:   []*pflag.FlagSet{diagramCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile is the path of the image file the diagram is drawn
              to. The format is chosen by the file extension. If empty, no
              image is drawn.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{diagramCmd.Flags()},
		},
		{
			name: "Temperatures",
			usage: `
              Temperatures is the list of temperatures [°C] to sweep over.`,
			defaultVal: []string{"25"},
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "PZns",
			usage: `
              PZns is the list of pZn values to sweep over.`,
			defaultVal: []string{"0", "2", "4", "6"},
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "System",
			usage: `
              System is the electrolyte system to calculate the speciation
              of. Options are fluoride and ammonia.`,
			shorthand:  "s",
			defaultVal: "fluoride",
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags()},
		},
		{
			name: "Recipe",
			usage: `
              Recipe gives the formal concentrations [mol/L] of the
              solution ingredients Zn, KOH, K2CO3, KF, and NH4OH. Ingredients
              that are not given take the default value for the system.
              It can be specified as a table in the configuration file or
              as a JSON object on the command line, e.g. {"KOH":"4"}.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags()},
		},
		{
			name: "DerivedVariables",
			usage: `
              DerivedVariables maps names to expressions of species
              concentrations to be calculated at every pH, e.g.
              {"hydroxo":"ZnOH4 / (Zn + ZnOH4)"}. The functions log10, exp,
              and sum are available.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags()},
		},
		{
			name: "SpeciationFile",
			usage: `
              SpeciationFile is the path of the Excel file the speciation
              profile is written to.`,
			shorthand:  "o",
			defaultVal: "speciation.xlsx",
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags()},
		},
		{
			name: "SpeciationPlotFile",
			usage: `
              SpeciationPlotFile is the path of the image file the
              speciation profile is drawn to. If empty, no image is drawn.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{speciationCmd.Flags()},
		},
		{
			name: "Verbose",
			usage: `
              Verbose turns on debug logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("POURBAIX")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(diagramCmd)
	Root.AddCommand(sweepCmd)
	Root.AddCommand(thresholdsCmd)
	Root.AddCommand(speciationCmd)
	Root.AddCommand(configCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("pourbaix: problem reading configuration file: %v", err)
		}
	}
	if l, ok := Log.(*logrus.Logger); ok {
		if Cfg.GetBool("Verbose") {
			l.SetLevel(logrus.DebugLevel)
		} else {
			l.SetLevel(logrus.InfoLevel)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "pourbaix",
	Short: "Potential-pH diagrams and speciation of zinc in alkaline solutions.",
	Long: `pourbaix calculates potential-pH (Pourbaix) diagrams of the zinc-water
system between 25 and 100 °C, and the equilibrium speciation of zinc in
fluoride and ammonia electrolytes. Use the subcommands specified below to
access the functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'POURBAIX_var' where 'var' is the
name of the variable to be set. Run 'pourbaix config' to create a configuration
file with the default settings.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of pourbaix.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("pourbaix v%s\n", pourbaix.Version)
	},
	DisableAutoGenTag: true,
}

// diagramCmd calculates a single diagram.
var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Calculate a potential-pH diagram.",
	Long: `diagram calculates the potential-pH diagram of the zinc-water system
at one temperature and pZn and writes it to a GeoJSON file, and optionally
draws it to an image file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := conditions(Cfg)
		if err != nil {
			return err
		}
		dc, err := diagramConfig(Cfg)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		d, err := pourbaix.New(dc, c)
		if err != nil {
			return err
		}
		Log.WithFields(logrus.Fields{"conditions": c.String(), "regime": d.Regime.String()}).Info("calculated diagram")
		if err := writeGeoJSONFile(outputFile, d); err != nil {
			return err
		}
		if plotFile := Cfg.GetString("PlotFile"); plotFile != "" {
			plotFile, err = checkOutputFile(plotFile)
			if err != nil {
				return err
			}
			p, err := render.Diagram(d)
			if err != nil {
				return err
			}
			if err := render.Save(p, plotFile); err != nil {
				return fmt.Errorf("pourbaix: writing plot: %v", err)
			}
			Log.WithField("file", plotFile).Info("wrote plot")
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// sweepCmd calculates diagrams at several temperatures and pZn values.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Calculate potential-pH diagrams over ranges of conditions.",
	Long: `sweep calculates potential-pH diagrams at every combination of the
given temperatures and pZn values in parallel, writes each to a GeoJSON
file, and prints the regime of each.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		temps, err := toFloat64SliceE(Cfg.Get("Temperatures"))
		if err != nil {
			return fmt.Errorf("parsing configuration: Temperatures: %v", err)
		}
		pZns, err := toFloat64SliceE(Cfg.Get("PZns"))
		if err != nil {
			return fmt.Errorf("parsing configuration: PZns: %v", err)
		}
		dc, err := diagramConfig(Cfg)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		ds, err := pourbaix.NewSweeper(dc).Diagrams(context.Background(), temps, pZns)
		if err != nil {
			return err
		}
		for _, d := range ds {
			f := sweepFileName(outputFile, d.Conditions)
			if err := writeGeoJSONFile(f, d); err != nil {
				return err
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), SweepSummary(ds))
		return nil
	},
	DisableAutoGenTag: true,
}

// thresholdsCmd prints the passivation thresholds and standard potentials.
var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Print regime thresholds and standard potentials.",
	Long: `thresholds prints the pZn thresholds that separate the passivation
regimes, the ionic product of water, and the standard potentials of the
electrochemical reactions at the given temperature.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := conditions(Cfg)
		if err != nil {
			return err
		}
		a, err := pourbaix.ParseApproximation(Cfg.GetString("Approximation"))
		if err != nil {
			return fmt.Errorf("parsing configuration: %v", err)
		}
		calc := pourbaix.NewCalculator(pourbaix.Aggregate(pourbaix.DefaultTable()), a, c)
		fmt.Fprint(cmd.OutOrStdout(), Summary(calc))
		return nil
	},
	DisableAutoGenTag: true,
}

// speciationCmd calculates a speciation profile.
var speciationCmd = &cobra.Command{
	Use:   "speciation",
	Short: "Calculate the speciation of zinc as a function of pH.",
	Long: `speciation calculates the equilibrium concentrations of all dissolved
and solid species of a zinc electrolyte between pH 0 and 15 and writes them,
together with any derived variables, to an Excel file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := system(Cfg.GetString("System"))
		if err != nil {
			return err
		}
		ingredients, err := GetStringMapString("Recipe", Cfg)
		if err != nil {
			return err
		}
		r, err := recipe(sys, ingredients)
		if err != nil {
			return err
		}
		derived, err := GetStringMapString("DerivedVariables", Cfg)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("SpeciationFile"))
		if err != nil {
			return err
		}
		totals, err := sys.Totals(r)
		if err != nil {
			return err
		}
		s, err := speciation.NewSolver(sys, totals)
		if err != nil {
			return err
		}
		s.Log = Log
		p, err := s.Solve()
		if err != nil {
			return err
		}
		if failed := p.Failed(); len(failed) > 0 {
			Log.WithField("samples", len(failed)).Warn("speciation did not converge at every pH")
		}
		dv, err := p.Derive(checkDerivedVariables(derived))
		if err != nil {
			return err
		}
		if err := WriteProfileXLSX(outputFile, p, dv); err != nil {
			return err
		}
		Log.WithField("file", outputFile).Info("wrote speciation")
		if ph, ok := p.CO2SaturationPH(speciation.DefaultHenryCO2, speciation.DefaultPCO2); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "CO2 saturation pH: %.2f\n", ph)
		}
		if plotFile := Cfg.GetString("SpeciationPlotFile"); plotFile != "" {
			plotFile, err = checkOutputFile(plotFile)
			if err != nil {
				return err
			}
			plt, err := render.Profile(p, nil)
			if err != nil {
				return err
			}
			if err := render.Save(plt, plotFile); err != nil {
				return fmt.Errorf("pourbaix: writing plot: %v", err)
			}
			Log.WithField("file", plotFile).Info("wrote plot")
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// configCmd writes a configuration file with the current settings.
var configCmd = &cobra.Command{
	Use:   "config [file]",
	Short: "Write a configuration file.",
	Long: `config writes a TOML configuration file containing every option and
its current value to the given file, or to standard output if no file is
given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return WriteConfig(cmd.OutOrStdout(), Cfg)
		}
		f, err := os.Create(filepath.Clean(args[0]))
		if err != nil {
			return fmt.Errorf("pourbaix: creating configuration file: %v", err)
		}
		if err := WriteConfig(f, Cfg); err != nil {
			f.Close()
			return err
		}
		Log.WithField("file", args[0]).Info("wrote configuration")
		return f.Close()
	},
	DisableAutoGenTag: true,
}
