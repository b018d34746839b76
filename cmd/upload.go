package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/vibora"
)

var (
	uploadName string
	uploadWait bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload <match.mp4>",
	Short: "Upload a match video to the backend for processing",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadName, "name", "", "match name (default: video file name)")
	uploadCmd.Flags().BoolVar(&uploadWait, "wait", false, "poll until processing finishes, then ingest the result")
}

func runUpload(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	ctx := cmd.Context()

	name := uploadName
	if name == "" {
		base := videoPath[strings.LastIndex(videoPath, "/")+1:]
		name = strings.TrimSuffix(base, ".mp4")
	}

	client := vibora.NewClient(cfg.BackendURL, cfg.APIToken)
	match, err := client.UploadVideo(ctx, videoPath, name)
	if err != nil {
		return fmt.Errorf("upload video: %w", err)
	}
	fmt.Printf("Uploaded: id=%s  name=%s  status=%s\n", match.ID, match.Name, match.Status)

	if !uploadWait {
		fmt.Printf("Run 'padelmetrics fetch --match %s' once processing finishes.\n", match.ID)
		return nil
	}

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		m, err := client.GetMatch(ctx, match.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  [warn] poll: %v\n", err)
			continue
		}
		fmt.Printf("  status=%s\n", m.Status)

		switch strings.ToLower(m.Status) {
		case model.StatusDone:
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()
			if _, err := ingestBackendMatch(ctx, db, client, *m); err != nil {
				return fmt.Errorf("ingest %s: %w", m.ID, err)
			}
			return nil
		case model.StatusFailed:
			return fmt.Errorf("processing failed for match %s", m.ID)
		}
	}
}
