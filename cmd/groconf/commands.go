/*
 * commands.go, part of mdconf.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	chem "github.com/rmera/mdconf"
	"github.com/rmera/mdconf/gro"
	"github.com/rmera/mdconf/internal/config"
	"github.com/rmera/mdconf/profile"
	v3 "github.com/rmera/mdconf/v3"
)

// env holds what every command needs: the configuration and the logger.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	cleanup func() error
}

func setup(cmd *cli.Command) (*env, error) {
	cfg, err := config.Resolve(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, cleanup := config.SetupLogger(cfg.Log.File, cfg.Log.Level)
	return &env{cfg: cfg, log: logger, cleanup: cleanup}, nil
}

// withEnv wraps a command action so it gets a ready env.
func withEnv(f func(ctx context.Context, cmd *cli.Command, e *env) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.cleanup()
		return f(ctx, cmd, e)
	}
}

func needArgs(cmd *cli.Command, n int) error {
	if cmd.Args().Len() < n {
		return fmt.Errorf("%s needs %d argument(s), got %d", cmd.Name, n, cmd.Args().Len())
	}
	return nil
}

//info

type residueSummary struct {
	Name   string   `yaml:"name"`
	Atoms  []string `yaml:"atoms"`
	Groups int      `yaml:"groups"`
}

type summary struct {
	File       string           `yaml:"file"`
	Title      string           `yaml:"title"`
	Atoms      int              `yaml:"atoms"`
	Velocities bool             `yaml:"velocities"`
	Box        [3]float64       `yaml:"box,flow"`
	Residues   []residueSummary `yaml:"residues"`
	BadGroups  int              `yaml:"bad_groups"`
}

// summarize describes C, counting the complete groups of each residue.
// It fails if C is corrupted.
func summarize(name string, C *chem.Configuration) (summary, error) {
	if err := C.Corrupted(); err != nil {
		return summary{}, fmt.Errorf("can't summarize %s: %w", name, err)
	}
	s := summary{
		File:       name,
		Title:      C.Title,
		Atoms:      C.Len(),
		Velocities: C.HasVelocities(),
		Box:        [3]float64{C.Size.X, C.Size.Y, C.Size.Z},
	}
	for _, R := range C.Residues.All() {
		rs := residueSummary{Name: R.Name().String()}
		for _, a := range R.Atoms() {
			rs.Atoms = append(rs.Atoms, a.String())
		}
		s.Residues = append(s.Residues, rs)
	}
	for atoms, err := range C.ResidueGroups() {
		if err != nil {
			s.BadGroups++
			continue
		}
		s.Residues[C.Residues.Index(atoms[0].Residue)].Groups++
	}
	return s, nil
}

func (s summary) print(w io.Writer) {
	fmt.Fprintf(w, "File: %s\nTitle: %s\nAtoms: %d (velocities: %v)\n", s.File, s.Title, s.Atoms, s.Velocities)
	fmt.Fprintf(w, "Box: %.5f %.5f %.5f\n", s.Box[0], s.Box[1], s.Box[2])
	for _, r := range s.Residues {
		fmt.Fprintf(w, "%-5s %6d x [%s]\n", r.Name, r.Groups, strings.Join(r.Atoms, " "))
	}
	if s.BadGroups > 0 {
		fmt.Fprintf(w, "Malformed groups: %d\n", s.BadGroups)
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print a summary of a configuration",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yaml", Usage: "Print the summary as YAML"},
		},
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			if err := needArgs(cmd, 1); err != nil {
				return err
			}
			name := cmd.Args().Get(0)
			C, err := gro.FileRead(name)
			if err != nil {
				return err
			}
			s, err := summarize(name, C)
			if err != nil {
				return err
			}
			if !cmd.Bool("yaml") {
				s.print(os.Stdout)
				return nil
			}
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(s)
		}),
	}
}

//convert

// parsePBC parses a "nx,ny,nz" replication string.
func parsePBC(s string) (n [3]int, err error) {
	f := strings.Split(s, ",")
	if len(f) != 3 {
		return n, fmt.Errorf("bad replication %q, expected nx,ny,nz", s)
	}
	for i, v := range f {
		n[i], err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n[i] < 1 {
			return n, fmt.Errorf("bad replication %q, expected positive integers", s)
		}
	}
	return n, nil
}

// convert reads in, replicates it if pbc is not empty, changes its title if title is
// not empty, and writes it to out.
func convert(in, out, pbc, title string, level int) (*chem.Configuration, error) {
	C, err := gro.FileRead(in)
	if err != nil {
		return nil, err
	}
	if pbc != "" {
		n, err := parsePBC(pbc)
		if err != nil {
			return nil, err
		}
		C = C.PBCMultiply(n[0], n[1], n[2])
	}
	if title != "" {
		C.Title = title
	}
	if err := gro.FileWrite(out, C, level); err != nil {
		return nil, err
	}
	return C, nil
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Rewrite a configuration, optionally replicated, compressed according to the output's extension",
		ArgsUsage: "IN OUT",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pbc", Usage: "Replicate the box nx,ny,nz times"},
			&cli.StringFlag{Name: "title", Usage: "New title"},
		},
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			if err := needArgs(cmd, 2); err != nil {
				return err
			}
			in, out := cmd.Args().Get(0), cmd.Args().Get(1)
			C, err := convert(in, out, cmd.String("pbc"), cmd.String("title"), e.cfg.CompressionLevel)
			if err != nil {
				return err
			}
			e.log.Info("configuration written", "in", in, "out", out, "atoms", C.Len(),
				"compression", gro.CompressionFor(out))
			return nil
		}),
	}
}

//check

type report struct {
	File   string
	Atoms  int
	Groups int
	Bad    []*chem.ResidueError
	Err    error //the file couldn't be read
}

func (r report) ok() bool {
	return r.Err == nil && len(r.Bad) == 0
}

// checkFile reads name and groups its atoms, collecting every malformed group.
func checkFile(name string) report {
	r := report{File: name}
	C, err := gro.FileRead(name)
	if err != nil {
		r.Err = err
		return r
	}
	r.Atoms = C.Len()
	for _, err := range C.ResidueGroups() {
		var rerr *chem.ResidueError
		if errors.As(err, &rerr) {
			r.Bad = append(r.Bad, rerr)
			continue
		}
		r.Groups++
	}
	return r
}

// checkFiles checks the files concurrently, with at most workers files at a time.
// The reports are in the order of names.
func checkFiles(ctx context.Context, names []string, workers int, logger *slog.Logger) ([]report, error) {
	reports := make([]report, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = checkFile(name)
			logger.Debug("file checked", "file", name, "groups", reports[i].Groups, "bad", len(reports[i].Bad))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check that the atoms of each file form complete residues",
		ArgsUsage: "FILE...",
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			if err := needArgs(cmd, 1); err != nil {
				return err
			}
			reports, err := checkFiles(ctx, cmd.Args().Slice(), e.cfg.Workers, e.log)
			if err != nil {
				return err
			}
			bad := 0
			for _, r := range reports {
				if r.ok() {
					fmt.Printf("%s: OK, %d atoms in %d residues\n", r.File, r.Atoms, r.Groups)
					continue
				}
				bad++
				if r.Err != nil {
					fmt.Printf("%s: %v\n", r.File, r.Err)
					continue
				}
				fmt.Printf("%s: %d malformed groups\n", r.File, len(r.Bad))
				for _, v := range r.Bad {
					fmt.Printf("  atoms %d to %d\n", v.Index+1, v.Index+v.Span)
				}
			}
			if bad > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d files are malformed", bad, len(reports)), 1)
			}
			return nil
		}),
	}
}

//profile

func profileCommand() *cli.Command {
	return &cli.Command{
		Name:      "profile",
		Usage:     "Print the density profile of a configuration along an axis",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "axis", Usage: "Axis of the profile (x, y or z). Defaults to the configured one"},
			&cli.IntFlag{Name: "bins", Usage: "Number of bins. Defaults to the configured one"},
			&cli.StringFlag{Name: "plot", Usage: "Save a plot of the profile to this file (png, svg, pdf)"},
			&cli.BoolFlag{Name: "normalize", Usage: "Give fractions of atoms instead of counts"},
		},
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			if err := needArgs(cmd, 1); err != nil {
				return err
			}
			name := cmd.Args().Get(0)
			axisname, bins := e.cfg.Profile.Axis, e.cfg.Profile.Bins
			if cmd.IsSet("axis") {
				axisname = cmd.String("axis")
			}
			if cmd.IsSet("bins") {
				bins = int(cmd.Int("bins"))
			}
			axis, err := v3.ParseAxis(axisname)
			if err != nil {
				return err
			}
			C, err := gro.FileRead(name)
			if err != nil {
				return err
			}
			P, err := profile.Density(C, axis, bins)
			if err != nil {
				return err
			}
			if cmd.Bool("normalize") {
				P.Normalize()
			}
			fmt.Println(P)
			if plotname := cmd.String("plot"); plotname != "" {
				if err := P.Plot(plotname, C.Title); err != nil {
					return err
				}
				e.log.Info("profile plotted", "file", plotname)
			}
			return nil
		}),
	}
}
