package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/vibora"
)

var statusCmd = &cobra.Command{
	Use:   "status <match-id>",
	Short: "Show the backend processing status of a match",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := vibora.NewClient(cfg.BackendURL, cfg.APIToken)
	m, err := client.GetMatch(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}

	fmt.Printf("ID:      %s\n", m.ID)
	fmt.Printf("Name:    %s\n", m.Name)
	fmt.Printf("Status:  %s\n", m.Status)
	fmt.Printf("Created: %s\n", m.CreatedAt)
	if m.CSVURL != "" {
		fmt.Printf("CSV:     %s\n", m.CSVURL)
	}
	return nil
}
