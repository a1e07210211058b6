// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/linefem/modelio"
)

func newCheckCmd(a *app) *cobra.Command {
	var comment string
	cmd := &cobra.Command{
		Use:   "check model.txt",
		Short: "Parse a model and write it back in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := modelio.LoadFile(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("model parsed",
				zap.String("model", args[0]),
				zap.Int("nodes", s.NodeCount()),
				zap.Int("elements", s.ElementCount()),
			)

			return modelio.Save(cmd.OutOrStdout(), s, comment)
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "comment line for the output")

	return cmd
}
