package main

import (
	"fmt"

	"github.com/quailyquaily/datelog/internal/clifmt"
	"github.com/quailyquaily/datelog/journal"
	"github.com/spf13/cobra"
)

var (
	profileName      string
	profileAge       int
	profileGender    string
	profileGoals     string
	profileInterests string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		store, _, err := openStores(ctx)
		if err != nil {
			return err
		}
		p, err := store.GetProfile(ctx)
		if err != nil {
			return err
		}
		fmt.Print(journal.BuildProfileContext(p))
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save the profile (overwrites every field)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		store, _, err := openStores(ctx)
		if err != nil {
			return err
		}
		err = store.PutProfile(ctx, journal.Profile{
			Name:      profileName,
			Age:       profileAge,
			Gender:    profileGender,
			Goals:     profileGoals,
			Interests: profileInterests,
		})
		if err != nil {
			return err
		}
		fmt.Println(clifmt.Success("Profile saved."))
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "your name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "your age")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "your gender")
	profileSetCmd.Flags().StringVar(&profileGoals, "goals", "", "your dating goals")
	profileSetCmd.Flags().StringVar(&profileInterests, "interests", "", "your interests")

	profileCmd.AddCommand(profileShowCmd, profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
