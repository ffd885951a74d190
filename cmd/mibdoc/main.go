/*
 * mibdoc command line
 *
 * Copyright (c) 2022 Telenor Norge AS
 *
 * This library is free software; you can redistribute it and/or
 * modify it under the terms of the GNU Lesser General Public
 * License as published by the Free Software Foundation; either
 * version 2.1 of the License, or (at your option) any later version.
 *
 * This library is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public
 * License along with this library; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
 * 02110-1301  USA
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/telenornms/mibdoc"
	"github.com/telenornms/mibdoc/order"
	"github.com/telenornms/mibdoc/publish"
	"github.com/telenornms/mibdoc/report"
	"github.com/telenornms/mibdoc/site"
	"github.com/telenornms/mibdoc/smierte"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		mibdoc.Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	var configFile string
	var debug bool
	root := &cobra.Command{
		Use:          "mibdoc",
		Short:        "mibdoc turns SNMP MIB modules into a static HTML site",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if err := mibdoc.ParseConfig(configFile); err != nil {
				return fmt.Errorf("couldn't parse config: %w", err)
			}
			if debug {
				mibdoc.Config.Debug = true
			}
			mibdoc.Init()
			mibdoc.Debugf("Read config file: %s", configFile)
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&debug, "debug", "v", false, "enable debug")
	root.PersistentFlags().StringVarP(&configFile, "config", "f", "", "config file (TOML)")

	root.AddCommand(buildCommand())
	root.AddCommand(lookupCommand())
	root.AddCommand(listenCommand())
	return root
}

// newEngine sets up reporting and publishing when they are configured.
func newEngine() (*order.Engine, error) {
	e := &order.Engine{
		Builder: site.Builder{
			Stylesheet:      mibdoc.Config.Stylesheet,
			LocalStylesheet: mibdoc.Config.LocalStylesheet,
		},
	}
	if mibdoc.Config.OutputConfig != "" {
		r, err := report.New(mibdoc.Config.OutputConfig, mibdoc.Config.ReportHandler)
		if err != nil {
			return nil, err
		}
		e.Reporter = r
	}
	if mibdoc.Config.Publish.Endpoint != "" {
		p, err := publish.NewMirror(mibdoc.Config.Publish)
		if err != nil {
			return nil, err
		}
		e.Publisher = p
	}
	return e, nil
}

func buildCommand() *cobra.Command {
	o := order.Order{}
	cmd := &cobra.Command{
		Use:   "build [module...]",
		Short: "Build the site once",
		Long: `Build loads the given SMI modules, or the configured ones if none are
given, and writes the site to the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}
			o.Modules = args
			_, err = e.Run(cmd.Context(), o)
			return err
		},
	}
	cmd.Flags().StringVarP(&o.Output, "output", "o", "", "output directory (default from config)")
	cmd.Flags().StringSliceVarP(&o.Paths, "path", "p", nil, "MIB search path, repeatable (default from config)")
	cmd.Flags().BoolVar(&o.Publish, "publish", false, "mirror the site to the configured bucket")
	cmd.Flags().BoolVar(&o.Report, "report", false, "send build stats through skogul")
	cmd.Flags().StringVar(&o.ID, "id", "", "build id used in logs and reports")
	return cmd
}

func lookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup name|oid...",
		Short: "Print where symbols end up in the site",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := smierte.Config{
				Modules:   mibdoc.Config.MibModules,
				Paths:     mibdoc.Config.MibPaths,
				CacheSize: mibdoc.Config.CacheSize,
			}
			if err := c.Init(); err != nil {
				return fmt.Errorf("failed to load mibs: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := smierte.Lookup(arg)
				if err != nil {
					mibdoc.Logf("%s: %s", arg, err)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", n.Qualified, n.Numeric, site.ModuleHref(n.Module, site.SymbolAnchor(n.Name)))
			}
			return nil
		},
	}
}
