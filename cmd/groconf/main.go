/*
 * main.go, part of mdconf.
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

// Command groconf inspects, converts and checks GROMOS87 (.gro) configuration files.
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "groconf",
		Usage: "Inspect, convert and check GROMOS87 (.gro) configurations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "groconf.yaml",
				Value:       "groconf.yaml",
				Sources:     cli.EnvVars("GROCONF_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			infoCommand(),
			convertCommand(),
			checkCommand(),
			profileCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("groconf error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
