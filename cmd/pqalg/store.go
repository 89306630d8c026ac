// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nfaross/model-s4plus/internal/store"
	"github.com/nfaross/model-s4plus/table"
)

// withStore opens the configured database for the duration of fn.
func (a *app) withStore(cmd *cobra.Command, fn func(*store.Store) error) error {
	path := a.cfg.GetString(cfgKeyDB)
	s, err := store.Open(cmd.Context(), path)
	if err != nil {
		return err
	}
	defer s.Close()
	a.log.Debug("store opened", "path", path)

	err = fn(s)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrEmptyName) {
		return fmt.Errorf("%w: %w", err, errUsage)
	}

	return err
}

func newStoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Save and load named combinations in SQLite",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "put <name> i j",
			Short: "Store M[i][j] under name",
			Args:  usageArgs(cobra.ExactArgs(3)),
			RunE: func(cmd *cobra.Command, args []string) error {
				i, j, err := parseCell(args[1], args[2])
				if err != nil {
					return err
				}

				return a.withStore(cmd, func(s *store.Store) error {
					rec, err := s.Put(cmd.Context(), args[0], table.M[i][j])
					if err != nil {
						return err
					}
					a.log.Debug("stored", "name", rec.Name, "id", rec.ID, "terms", rec.Terms)
					_, err = fmt.Fprintf(a.out, "%s\t%s\n", rec.ID, rec.Fingerprint)

					return err
				})
			},
		},
		&cobra.Command{
			Use:   "get <name>",
			Short: "Print the combination stored under name",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(cmd, func(s *store.Store) error {
					c, err := s.Get(cmd.Context(), args[0])
					if err != nil {
						return err
					}

					return writeValue(a.out, a.format(), c)
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List stored combinations",
			Args:  usageArgs(cobra.NoArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(cmd, func(s *store.Store) error {
					recs, err := s.List(cmd.Context())
					if err != nil {
						return err
					}
					tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "NAME\tTERMS\tFINGERPRINT\tUPDATED")
					for _, r := range recs {
						fmt.Fprintf(tw, "%s\t%d\t%.16s\t%s\n", r.Name, r.Terms, r.Fingerprint, r.UpdatedAt.Format("2006-01-02 15:04:05"))
					}

					return tw.Flush()
				})
			},
		},
		&cobra.Command{
			Use:     "rm <name>",
			Aliases: []string{"delete"},
			Short:   "Delete the combination stored under name",
			Args:    usageArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(cmd, func(s *store.Store) error {
					return s.Delete(cmd.Context(), args[0])
				})
			},
		},
	)

	return cmd
}
