package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/witrix-cli/internal/domain"
)

const flagGuild = "guild"

// guildFlag adds --guild to cmd; empty means the selected guild.
func guildFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, flagGuild, "g", "", "Guild ID (defaults to the selected guild)")
}

func newGuildChannelsCmd(a *app) *cobra.Command {
	var (
		guildID string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:         "channels",
		Short:       "List the channels of a guild",
		Annotations: routeAnnotation(domain.ServersPath),
		RunE: func(cmd *cobra.Command, _ []string) error {
			channels, err := a.admin.Channels(cmd.Context(), domain.GuildID(guildID))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, nonNil(channels))
			}

			rows := make([][]string, 0, len(channels))
			for _, channel := range channels {
				rows = append(rows, []string{channel.ID.String(), channel.Name, strconv.Itoa(channel.Type)})
			}
			return writeTable(cmd.OutOrStdout(), []string{"id", "name", "type"}, rows)
		},
	}

	guildFlag(cmd, &guildID)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print channels as JSON")

	return cmd
}

func newGuildRolesCmd(a *app) *cobra.Command {
	var (
		guildID string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:         "roles",
		Short:       "List the roles of a guild",
		Annotations: routeAnnotation(domain.ServersPath),
		RunE: func(cmd *cobra.Command, _ []string) error {
			roles, err := a.admin.Roles(cmd.Context(), domain.GuildID(guildID))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, nonNil(roles))
			}

			rows := make([][]string, 0, len(roles))
			for _, role := range roles {
				rows = append(rows, []string{role.ID.String(), role.Name})
			}
			return writeTable(cmd.OutOrStdout(), []string{"id", "name"}, rows)
		},
	}

	guildFlag(cmd, &guildID)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print roles as JSON")

	return cmd
}

func newGuildConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the bot settings of a guild",
	}

	cmd.AddCommand(newGuildConfigGetCmd(a), newGuildConfigSetCmd(a))

	return cmd
}

func newGuildConfigGetCmd(a *app) *cobra.Command {
	var (
		guildID string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:         "get",
		Short:       "Show the bot settings of a guild",
		Annotations: routeAnnotation(domain.SettingsPath),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.admin.Config(cmd.Context(), domain.GuildID(guildID))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, cfg)
			}
			return writeGuildConfig(cmd, cfg)
		},
	}

	guildFlag(cmd, &guildID)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print settings as JSON")

	return cmd
}

func newGuildConfigSetCmd(a *app) *cobra.Command {
	var (
		guildID         string
		welcomeChannel  string
		welcomeRole     string
		levelChannel    string
		roleSelect      string
		selectableRoles []string
	)

	cmd := &cobra.Command{
		Use:         "set",
		Short:       "Change the bot settings of a guild",
		Long:        "Change the bot settings of a guild. Only the flags that are given are sent.",
		Annotations: routeAnnotation(domain.SettingsPath),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var update domain.GuildConfigUpdate
			flags := cmd.Flags()
			if flags.Changed("welcome-channel") {
				update.WelcomeChannelID = domain.SnowflakePtr(welcomeChannel)
			}
			if flags.Changed("welcome-role") {
				update.WelcomeRoleID = domain.SnowflakePtr(welcomeRole)
			}
			if flags.Changed("level-channel") {
				update.LevelChannelID = domain.SnowflakePtr(levelChannel)
			}
			if flags.Changed("role-select-channel") {
				update.RoleSelectChannelID = domain.SnowflakePtr(roleSelect)
			}
			for _, role := range selectableRoles {
				if trimmed := strings.TrimSpace(role); trimmed != "" {
					update.SelectableRoles = append(update.SelectableRoles, domain.Snowflake(trimmed))
				}
			}

			cfg, err := a.admin.UpdateConfig(cmd.Context(), domain.GuildID(guildID), update)
			if err != nil {
				return err
			}
			a.notify("Settings saved")
			return writeGuildConfig(cmd, cfg)
		},
	}

	guildFlag(cmd, &guildID)
	cmd.Flags().StringVar(&welcomeChannel, "welcome-channel", "", "Channel ID for welcome messages")
	cmd.Flags().StringVar(&welcomeRole, "welcome-role", "", "Role ID given to new members")
	cmd.Flags().StringVar(&levelChannel, "level-channel", "", "Channel ID for level-up messages")
	cmd.Flags().StringVar(&roleSelect, "role-select-channel", "", "Channel ID for the role picker")
	cmd.Flags().StringSliceVar(&selectableRoles, "selectable-role", nil, "Role ID members may pick (repeatable)")

	return cmd
}

func writeGuildConfig(cmd *cobra.Command, cfg domain.GuildConfig) error {
	roles := make([]string, 0, len(cfg.SelectableRoles))
	for _, role := range cfg.SelectableRoles {
		roles = append(roles, role.String())
	}

	return writeTable(cmd.OutOrStdout(), []string{"setting", "value"}, [][]string{
		{"guild", cfg.GuildID.String()},
		{"welcome channel", snowflakeOrDash(cfg.WelcomeChannelID)},
		{"welcome role", snowflakeOrDash(cfg.WelcomeRoleID)},
		{"level channel", snowflakeOrDash(cfg.LevelChannelID)},
		{"role select channel", snowflakeOrDash(cfg.RoleSelectChannelID)},
		{"selectable roles", dashIfEmpty(strings.Join(roles, ", "))},
	})
}

func newGuildMembersCmd(a *app) *cobra.Command {
	var (
		guildID string
		query   domain.MemberListQuery
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:         "members",
		Short:       "List member levels of a guild",
		Annotations: routeAnnotation(domain.ServersPath),
		RunE: func(cmd *cobra.Command, _ []string) error {
			members, err := a.admin.Members(cmd.Context(), domain.GuildID(guildID), query)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, nonNil(members))
			}
			if len(members) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No members.")
				return err
			}
			return writeMembers(cmd, members)
		},
	}

	guildFlag(cmd, &guildID)
	cmd.Flags().IntVar(&query.Offset, "offset", 0, "Skip this many members")
	cmd.Flags().IntVar(&query.Limit, "limit", 0, fmt.Sprintf("Members per page, up to %d (server default when 0)", domain.MemberListMaxLimit))
	cmd.Flags().StringVar(&query.OrderBy, "order-by", "", "Sort field: "+strings.Join(domain.MemberOrderFields, ", "))
	cmd.Flags().StringVar(&query.Order, "order", "", "Sort direction: asc or desc")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print members as JSON")

	cmd.AddCommand(newGuildMembersCountCmd(a))

	return cmd
}

func newGuildMembersCountCmd(a *app) *cobra.Command {
	var guildID string

	cmd := &cobra.Command{
		Use:         "count",
		Short:       "Count the members with a level record",
		Annotations: routeAnnotation(domain.ServersPath),
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := a.admin.MemberCount(cmd.Context(), domain.GuildID(guildID))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), count)
			return err
		},
	}

	guildFlag(cmd, &guildID)

	return cmd
}

func newGuildMemberCmd(a *app) *cobra.Command {
	var (
		guildID string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:         "member <user-id>",
		Short:       "Show the level record of one member",
		Args:        cobra.ExactArgs(1),
		Annotations: routeAnnotation(domain.ServersPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			member, err := a.admin.Member(cmd.Context(), domain.GuildID(guildID), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, member)
			}
			return writeMembers(cmd, []domain.MemberLevel{member})
		},
	}

	guildFlag(cmd, &guildID)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the member as JSON")

	return cmd
}

func newGuildLevelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "level",
		Short: "Change member levels",
	}

	cmd.AddCommand(newGuildLevelSetCmd(a))

	return cmd
}

func newGuildLevelSetCmd(a *app) *cobra.Command {
	var (
		guildID                           string
		level, xp, messages, daysOnServer int64
	)

	cmd := &cobra.Command{
		Use:         "set <user-id>",
		Short:       "Overwrite level, xp, message count or days on server of a member",
		Args:        cobra.ExactArgs(1),
		Annotations: routeAnnotation(domain.ServersPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update domain.MemberLevelUpdate
			flags := cmd.Flags()
			if flags.Changed("level") {
				update.Level = &level
			}
			if flags.Changed("xp") {
				update.XP = &xp
			}
			if flags.Changed("messages") {
				update.MessageCount = &messages
			}
			if flags.Changed("days") {
				update.DaysOnServer = &daysOnServer
			}

			member, err := a.admin.UpdateMemberLevel(cmd.Context(), domain.GuildID(guildID), args[0], update)
			if err != nil {
				return err
			}
			a.notify("Level updated")
			return writeMembers(cmd, []domain.MemberLevel{member})
		},
	}

	guildFlag(cmd, &guildID)
	cmd.Flags().Int64Var(&level, "level", 0, "New level")
	cmd.Flags().Int64Var(&xp, "xp", 0, "New xp")
	cmd.Flags().Int64Var(&messages, "messages", 0, "New message count")
	cmd.Flags().Int64Var(&daysOnServer, "days", 0, "New days on server")

	return cmd
}

func writeMembers(cmd *cobra.Command, members []domain.MemberLevel) error {
	rows := make([][]string, 0, len(members))
	for _, member := range members {
		rows = append(rows, []string{
			member.UserID.String(),
			member.Name(),
			strconv.FormatInt(member.Level, 10),
			strconv.FormatInt(member.XP, 10),
			strconv.FormatInt(member.MessageCount, 10),
			strconv.FormatInt(member.DaysOnServer, 10),
		})
	}

	return writeTable(cmd.OutOrStdout(), []string{"user", "name", "level", "xp", "messages", "days"}, rows)
}

func snowflakeOrDash(id *domain.Snowflake) string {
	if id == nil {
		return "-"
	}
	return id.String()
}

func dashIfEmpty(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
