package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/witrix-cli/internal/adapters/prompt"
	"github.com/bnema/witrix-cli/internal/domain"
)

func newGuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "guild",
		Aliases: []string{"guilds", "server"},
		Short:   "List, select and administer guilds",
	}

	cmd.AddCommand(
		newGuildListCmd(a),
		newGuildSelectCmd(a),
		newGuildDefaultCmd(a),
		newGuildChannelsCmd(a),
		newGuildRolesCmd(a),
		newGuildConfigCmd(a),
		newGuildMembersCmd(a),
		newGuildMemberCmd(a),
		newGuildLevelCmd(a),
	)

	return cmd
}

func newGuildListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "list",
		Short:       "List the guilds you can manage",
		Annotations: routeAnnotation(domain.ServersPath),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.guilds.LoadGuilds(cmd.Context())
			guildCtx := a.guilds.Context()

			if asJSON {
				if guildCtx.Guilds == nil {
					guildCtx.Guilds = []domain.Guild{}
				}
				return writeJSON(cmd, guildCtx.Guilds)
			}
			if len(guildCtx.Guilds) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No guilds available.")
				return err
			}

			rows := make([][]string, 0, len(guildCtx.Guilds))
			for _, guild := range guildCtx.Guilds {
				marker := ""
				if guildCtx.SelectedGuildID != nil && *guildCtx.SelectedGuildID == guild.ID {
					marker = "*"
				}
				rows = append(rows, []string{marker, guild.ID.String(), guild.Name})
			}
			return writeTable(cmd.OutOrStdout(), []string{"", "id", "name"}, rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print guilds as JSON")

	return cmd
}

func newGuildSelectCmd(a *app) *cobra.Command {
	var clearFlag bool

	cmd := &cobra.Command{
		Use:         "select [guild-id]",
		Short:       "Choose the guild later commands act on",
		Long:        "Choose the guild later commands act on. Without an argument a picker is shown on a terminal.",
		Args:        cobra.MaximumNArgs(1),
		Annotations: routeAnnotation(domain.ServersPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearFlag {
				if err := a.guilds.SetSelectedGuildID(cmd.Context(), nil); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Guild selection cleared")
				return err
			}

			a.guilds.LoadGuilds(cmd.Context())
			guilds := a.guilds.Guilds()

			var id domain.GuildID
			if len(args) == 1 {
				id = domain.GuildID(args[0])
			} else {
				picked, err := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr()).SelectGuild(guilds, a.guilds.SelectedGuildID())
				if errors.Is(err, prompt.ErrNotInteractive) {
					return fmt.Errorf("guild id argument is required when stdin is not a terminal")
				}
				if err != nil {
					return err
				}
				id = picked
			}

			if err := a.guilds.SetSelectedGuildID(cmd.Context(), domain.GuildIDPtr(id)); err != nil {
				return err
			}

			label := id.String()
			if guild, ok := domain.FindGuild(guilds, id); ok {
				label = fmt.Sprintf("%s (%s)", guild.Name, guild.ID)
			} else {
				a.logger.Warn("selected guild is not in the guild list", "guild_id", id)
			}
			a.notify("Selected " + label)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Selected guild %s\n", label)
			return err
		},
	}

	cmd.Flags().BoolVar(&clearFlag, "clear", false, "Forget the current selection")

	return cmd
}

func newGuildDefaultCmd(a *app) *cobra.Command {
	var clearFlag bool

	cmd := &cobra.Command{
		Use:         "default [guild-id]",
		Short:       "Show or set the default guild saved on your profile",
		Args:        cobra.MaximumNArgs(1),
		Annotations: routeAnnotation(domain.DashboardPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !clearFlag {
				current := a.session.DefaultGuildID()
				if current == nil {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "No default guild")
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), current.String())
				return err
			}

			var id *domain.GuildID
			if !clearFlag {
				id = domain.GuildIDPtr(domain.GuildID(args[0]))
			}
			if err := a.session.SetDefaultGuild(cmd.Context(), id); err != nil {
				return err
			}

			if updated := a.session.DefaultGuildID(); updated != nil {
				a.notify("Default guild saved")
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Default guild set to %s\n", updated)
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Default guild cleared")
			return err
		},
	}

	cmd.Flags().BoolVar(&clearFlag, "clear", false, "Remove the default guild")

	return cmd
}
