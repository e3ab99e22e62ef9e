package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cubeai/bubix/internal/release"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update bubix to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := release.NewChecker(release.WithTimeout(2 * time.Minute))

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		err := checker.Update(ctx, &release.UpdateInput{
			CurrentVersion: version,
		}, func(p release.UpdateProgress) {
			fmt.Println(p.Message)
		})

		if err == nil {
			return nil
		}

		if errors.Is(err, release.ErrDevBuild) {
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		}
		if errors.Is(err, release.ErrAlreadyLatest) {
			fmt.Println("Already running the latest version.")
			return nil
		}
		if os.IsPermission(err) {
			return fmt.Errorf("%w\n\nTry running: sudo bubix update", err)
		}

		return err
	},
}
