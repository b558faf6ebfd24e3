package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ipierette/catbytes-portfolio/api/dto/mappers"
	catbytes "github.com/ipierette/catbytes-portfolio/lib"
)

func newAdoptCmd(root *rootOptions) *cobra.Command {
	var filters catbytes.Filters

	cmd := &cobra.Command{
		Use:   "adopt",
		Short: "Search cat adoption listings",
		Example: `  catbytes adopt --color preto --local "São Paulo"
  catbytes adopt --age filhote --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.client()
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := root.context(cmd.Context())
			defer cancel()

			result, err := client.FindCats(ctx, filters)
			if err != nil {
				return err
			}
			if root.asJSON {
				return writeJSON(cmd.OutOrStdout(), mappers.ToAdoptCatResponse(result))
			}
			return renderAdoption(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&filters.Age, "age", "", "desired age (filhote, adulto, idoso)")
	cmd.Flags().StringVar(&filters.Color, "color", "", "coat color")
	cmd.Flags().StringVar(&filters.Location, "local", "", "city or state")
	return cmd
}

func newEmailCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "email ADDRESS",
		Short: "Validate a contact email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.client()
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := root.context(cmd.Context())
			defer cancel()

			verdict, err := client.ValidateEmail(ctx, args[0])
			if err != nil {
				return err
			}
			if root.asJSON {
				return writeJSON(cmd.OutOrStdout(), verdict)
			}
			return renderEmail(cmd.OutOrStdout(), args[0], verdict)
		},
	}
}

func newAdCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ad DESCRIPTION...",
		Short: "Write a social-media adoption post",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.client()
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := root.context(cmd.Context())
			defer cancel()

			pkg, err := client.GenerateAd(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if root.asJSON {
				return writeJSON(cmd.OutOrStdout(), pkg)
			}
			return renderAd(cmd.OutOrStdout(), pkg)
		},
	}
}

func newIdentifyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "identify PHOTO",
		Short: "Estimate age, breed and temperament from a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading photo: %w", err)
			}

			client, err := root.client()
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := root.context(cmd.Context())
			defer cancel()

			profile, err := client.IdentifyCat(ctx, catbytes.Image{
				Filename: filepath.Base(args[0]),
				MIMEType: http.DetectContentType(data),
				Data:     data,
			})
			if err != nil {
				return err
			}
			if root.asJSON {
				return writeJSON(cmd.OutOrStdout(), profile)
			}
			return renderProfile(cmd.OutOrStdout(), profile)
		},
	}
}
