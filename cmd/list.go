package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exoumoon/invar/core"
	"github.com/exoumoon/invar/internal/shared"
)

// componentListCmd represents the component list command
var componentListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the pack's components",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo()

		components, err := repo.Components()
		if err != nil {
			shared.Exitln(err)
		}

		// Filter components by side
		if viper.IsSet("component.list.side") {
			side := viper.GetString("component.list.side")
			if side != "client" && side != "server" {
				shared.Exitf("Invalid side %q, must be client or server\n", side)
			}

			i := 0
			for _, component := range components {
				requirement := component.Environment.Client
				if side == "server" {
					requirement = component.Environment.Server
				}
				if requirement != core.RequirementUnsupported {
					components[i] = component
					i++
				}
			}
			components = components[:i]
		}

		sort.Slice(components, func(i, j int) bool {
			return components[i].Id < components[j].Id
		})

		if filter := viper.GetString("component.list.filter"); filter != "" {
			ids := make([]string, len(components))
			for i, component := range components {
				ids[i] = component.Id.String()
			}
			matches := fuzzy.Find(filter, ids)
			filtered := make([]core.Component, 0, len(matches))
			for _, match := range matches {
				filtered = append(filtered, components[match.Index])
			}
			components = filtered
		}

		for _, component := range components {
			if viper.GetBool("component.list.verbose") {
				tags := "untagged"
				if component.Tags.Main != nil {
					tags = component.Tags.Main.String()
					if len(component.Tags.Others) > 0 {
						others := make([]string, len(component.Tags.Others))
						for i, tag := range component.Tags.Others {
							others[i] = tag.String()
						}
						tags += ", " + strings.Join(others, ", ")
					}
				}
				fmt.Printf("%s (%s, %s, %s)\n",
					component.Id, component.Category, component.Environment.String(), tags)
			} else {
				fmt.Println(component.Id)
			}
		}
	},
}

func init() {
	componentCmd.AddCommand(componentListCmd)

	componentListCmd.Flags().BoolP("verbose", "v", false, "Print category, environment and tags")
	_ = viper.BindPFlag("component.list.verbose", componentListCmd.Flags().Lookup("verbose"))
	componentListCmd.Flags().StringP("side", "s", "", "Only components that run on this side (client or server)")
	_ = viper.BindPFlag("component.list.side", componentListCmd.Flags().Lookup("side"))
	componentListCmd.Flags().StringP("filter", "f", "", "Fuzzy-match component ids against this pattern")
	_ = viper.BindPFlag("component.list.filter", componentListCmd.Flags().Lookup("filter"))
}
