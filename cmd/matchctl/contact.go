package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/influencer-match-api/pkg/utils"
)

const (
	promptYes = "Yes"
	promptNo  = "No"
)

var errAborted = errors.New("contact aborted")

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Email the eligible influencers of a campaign",
	RunE:  runContact,
}

func init() {
	rootCmd.AddCommand(contactCmd)

	contactCmd.Flags().StringP("campaign", "c", "", "campaign id to contact influencers for")
	contactCmd.Flags().Bool("all-active", false, "run auto contact for every active campaign")
	contactCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

func runContact(cmd *cobra.Command, _ []string) error {
	campaignID, _ := cmd.Flags().GetString("campaign")
	allActive, _ := cmd.Flags().GetBool("all-active")
	if campaignID == "" && !allActive {
		return errors.New("--campaign or --all-active is required")
	}

	application, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer application.Close()

	services := application.Services
	label := "Contact influencers of every active campaign?"

	if !allActive {
		campaign, err := services.Catalog.GetCampaign(cmd.Context(), campaignID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(campaign))
		label = fmt.Sprintf("Contact influencers of campaign %q?", campaign.Name)
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		if err := confirm(label); err != nil {
			return err
		}
	}

	if allActive {
		contacted, err := services.ContactDriver.RunAllActive(cmd.Context())
		if err != nil {
			return err
		}
		logrus.WithField("contacted", contacted).Info("Contato automático concluído")
		return nil
	}

	result, err := services.ContactDriver.RunForCampaign(cmd.Context(), campaignID)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(result))
	return nil
}

func confirm(label string) error {
	prompt := promptui.Select{
		Label: label,
		Items: []string{promptYes, promptNo},
	}

	_, answer, err := prompt.Run()
	if err != nil {
		return err
	}
	if answer != promptYes {
		return errAborted
	}
	return nil
}
